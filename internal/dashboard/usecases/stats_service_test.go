package usecases_test

import (
	"context"
	"errors"

	"atlas-cms/internal/dashboard/usecases"
	mockusecases "atlas-cms/test/unit/doubles/dashboard/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SimpleStatsService", func() {
	var (
		ctx      context.Context
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockStatsRepository
		service  usecases.StatsService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockStatsRepository(ctrl)
		service = usecases.NewStatsService(mockRepo)
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("combines totals and per type usage", func() {
		totals := usecases.Totals{ContentTypes: 2, Entries: 40, Users: 3}
		usage := []usecases.ContentTypeUsage{
			{APIIdentifier: "articles", EntryCount: 30},
			{APIIdentifier: "authors", EntryCount: 10},
		}
		mockRepo.EXPECT().Totals(gomock.Any()).Return(totals, nil)
		mockRepo.EXPECT().ContentTypeUsage(gomock.Any()).Return(usage, nil)

		stats, err := service.CollectStats(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(stats.Totals).To(gomega.Equal(totals))
		gomega.Expect(stats.Usage).To(gomega.Equal(usage))
	})

	ginkgo.It("propagates a totals failure", func() {
		mockRepo.EXPECT().
			Totals(gomock.Any()).
			Return(usecases.Totals{}, errors.New("query failed"))

		_, err := service.CollectStats(ctx)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("propagates a usage failure", func() {
		mockRepo.EXPECT().Totals(gomock.Any()).Return(usecases.Totals{}, nil)
		mockRepo.EXPECT().
			ContentTypeUsage(gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := service.CollectStats(ctx)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
