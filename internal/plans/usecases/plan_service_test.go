package usecases_test

import (
	"context"

	"atlas-cms/internal/plans/domain"
	"atlas-cms/internal/plans/usecases"
	mockusecases "atlas-cms/test/unit/doubles/plans/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SimplePlanService", func() {
	var (
		ctx      context.Context
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockPlanRepository
		service  usecases.PlanService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockPlanRepository(ctrl)
		service = usecases.NewPlanService(mockRepo)
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	newPlan := func() domain.Plan {
		plan, err := domain.NewPlanBuilder().
			WithSlug("andes-trek").
			WithTitle("Andes Trek").
			WithDestination("Peru").
			WithDuration(7).
			WithPrice(1490, "USD").
			Build()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return plan
	}

	ginkgo.Context("CreatePlan", func() {
		ginkgo.It("persists a plan with a fresh slug", func() {
			plan := newPlan()
			mockRepo.EXPECT().
				GetBySlug(gomock.Any(), "andes-trek").
				Return(domain.Plan{}, usecases.ErrPlanNotFound)
			mockRepo.EXPECT().Create(gomock.Any(), plan).Return(nil)

			gomega.Expect(service.CreatePlan(ctx, plan)).To(gomega.Succeed())
		})

		ginkgo.It("rejects a duplicated slug", func() {
			plan := newPlan()
			mockRepo.EXPECT().
				GetBySlug(gomock.Any(), "andes-trek").
				Return(domain.Plan{ID: "other", Slug: "andes-trek"}, nil)

			err := service.CreatePlan(ctx, plan)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrPlanDuplicated))
		})
	})

	ginkgo.Context("GetPlan", func() {
		ginkgo.It("hides archived plans", func() {
			plan := newPlan()
			plan.Archive()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)

			_, err := service.GetPlan(ctx, plan.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrPlanNotFound))
		})
	})

	ginkgo.Context("UpdatePlan", func() {
		ginkgo.It("applies only the provided fields", func() {
			plan := newPlan()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)

			var saved domain.Plan
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p domain.Plan) error {
					saved = p
					return nil
				})

			title := "Andes Grand Trek"
			price := 1690.0
			updated, err := service.UpdatePlan(ctx, plan.ID, usecases.PlanUpdate{
				Title: &title,
				Price: &price,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated).To(gomega.Equal(saved))
			gomega.Expect(updated.Title).To(gomega.Equal("Andes Grand Trek"))
			gomega.Expect(updated.Price).To(gomega.Equal(1690.0))
			gomega.Expect(updated.Destination).To(gomega.Equal("Peru"))
		})

		ginkgo.It("rejects an invalid duration without persisting", func() {
			plan := newPlan()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)

			days := 0
			_, err := service.UpdatePlan(ctx, plan.ID, usecases.PlanUpdate{DurationDays: &days})
			gomega.Expect(err).To(gomega.MatchError(domain.ErrInvalidDuration))
		})
	})

	ginkgo.Context("publish lifecycle", func() {
		ginkgo.It("publishes and unpublishes", func() {
			plan := newPlan()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p domain.Plan) error {
					gomega.Expect(p.Published).To(gomega.BeTrue())
					return nil
				})

			published, err := service.PublishPlan(ctx, plan.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(published.Published).To(gomega.BeTrue())

			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(published, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p domain.Plan) error {
					gomega.Expect(p.Published).To(gomega.BeFalse())
					return nil
				})

			unpublished, err := service.UnpublishPlan(ctx, plan.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(unpublished.Published).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("ArchivePlan", func() {
		ginkgo.It("soft deletes the plan", func() {
			plan := newPlan()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p domain.Plan) error {
					gomega.Expect(p.Archived).To(gomega.BeTrue())
					gomega.Expect(p.Published).To(gomega.BeFalse())
					return nil
				})

			gomega.Expect(service.ArchivePlan(ctx, plan.ID)).To(gomega.Succeed())
		})

		ginkgo.It("is idempotent through the not found sentinel", func() {
			plan := newPlan()
			plan.Archive()
			mockRepo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)

			err := service.ArchivePlan(ctx, plan.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrPlanNotFound))
		})
	})
})
