package usecases_test

import (
	"context"
	"time"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/usecases"
	"atlas-cms/internal/infra/utils"
	mockusecases "atlas-cms/test/unit/doubles/content/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("EntryService", func() {
	var (
		ctrl            *gomock.Controller
		mockTypes       *mockusecases.MockContentTypeRepository
		mockRepo        *mockusecases.MockEntryRepository
		service         *usecases.SimpleEntryService
		ctx             context.Context
		articles        domain.ContentType
		authors         domain.ContentType
		existingAuthor  domain.Entry
		existingArticle domain.Entry
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockTypes = mockusecases.NewMockContentTypeRepository(ctrl)
		mockRepo = mockusecases.NewMockEntryRepository(ctrl)
		service = usecases.NewEntryService(mockTypes, mockRepo)
		ctx = context.Background()

		title, err := domain.NewField("title", "Title", domain.FieldKindText, true, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		views, err := domain.NewField("views", "", domain.FieldKindNumber, false, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		author, err := domain.NewField("author", "", domain.FieldKindRelation, false, domain.FieldMetadata{"content_type": "authors"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		articles, err = domain.NewContentTypeBuilder().
			WithAPIIdentifier("articles").
			WithFields(title, views, author).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		name, err := domain.NewField("name", "", domain.FieldKindText, true, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		authors, err = domain.NewContentTypeBuilder().
			WithAPIIdentifier("authors").
			WithField(name).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		existingAuthor, err = domain.NewEntryBuilder().
			WithContentTypeID(authors.ID).
			WithData(domain.EntryData{"name": "Ada"}).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		existingArticle, err = domain.NewEntryBuilder().
			WithContentTypeID(articles.ID).
			WithData(domain.EntryData{"title": "Hello", "views": float64(10)}).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("CreateEntry", func() {
		ginkgo.It("validates then persists", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			entry, err := service.CreateEntry(ctx, articles.ID, domain.EntryData{"title": "Hello"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(entry.ID).NotTo(gomega.BeEmpty())
			gomega.Expect(entry.ContentTypeID).To(gomega.Equal(articles.ID))
			gomega.Expect(entry.Data["title"]).To(gomega.Equal("Hello"))
		})

		ginkgo.It("returns every validation error and never persists", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)

			_, err := service.CreateEntry(ctx, articles.ID, domain.EntryData{"views": "abc"})
			gomega.Expect(err).To(gomega.HaveOccurred())

			validationErrs, ok := err.(domain.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(validationErrs).To(gomega.HaveLen(2))
			gomega.Expect(validationErrs[0].Rule).To(gomega.Equal(domain.RuleMissingRequiredField))
			gomega.Expect(validationErrs[1].Rule).To(gomega.Equal(domain.RuleTypeMismatch))
		})

		ginkgo.It("rejects a relation pointing at a missing entry", func() {
			missingID := utils.GenerateUUID()
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID(missingID)).Return(domain.Entry{}, usecases.ErrEntryNotFound)

			_, err := service.CreateEntry(ctx, articles.ID, domain.EntryData{
				"title":  "Hello",
				"author": missingID,
			})

			validationErrs, ok := err.(domain.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(validationErrs).To(gomega.HaveLen(1))
			gomega.Expect(validationErrs[0].Rule).To(gomega.Equal(domain.RuleConstraintViolation))
			gomega.Expect(validationErrs[0].Constraint).To(gomega.Equal(domain.ConstraintRelationTarget))
		})

		ginkgo.It("rejects a relation whose target belongs to another content type", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByAPIIdentifier(gomock.Any(), "authors").Return(authors, nil)

			_, err := service.CreateEntry(ctx, articles.ID, domain.EntryData{
				"title":  "Hello",
				"author": existingArticle.ID.String(),
			})

			validationErrs, ok := err.(domain.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(validationErrs[0].Constraint).To(gomega.Equal(domain.ConstraintRelationTarget))
		})

		ginkgo.It("accepts a resolvable relation", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().GetByID(gomock.Any(), existingAuthor.ID).Return(existingAuthor, nil)
			mockTypes.EXPECT().GetByAPIIdentifier(gomock.Any(), "authors").Return(authors, nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			_, err := service.CreateEntry(ctx, articles.ID, domain.EntryData{
				"title":  "Hello",
				"author": existingAuthor.ID.String(),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("propagates unknown content types", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), domain.ID("missing")).Return(domain.ContentType{}, usecases.ErrContentTypeNotFound)

			_, err := service.CreateEntry(ctx, domain.ID("missing"), domain.EntryData{"title": "Hello"})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrContentTypeNotFound))
		})
	})

	ginkgo.Context("GetEntry", func() {
		ginkgo.It("hides entries of other content types", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), existingAuthor.ID).Return(existingAuthor, nil)

			_, err := service.GetEntry(ctx, articles.ID, existingAuthor.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrEntryNotFound))
		})
	})

	ginkgo.Context("UpdateEntry", func() {
		ginkgo.It("merges the partial payload over stored data", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.UpdateEntry(ctx, articles.ID, existingArticle.ID, domain.EntryData{"views": float64(11)})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Data["title"]).To(gomega.Equal("Hello"))
			gomega.Expect(updated.Data["views"]).To(gomega.Equal(float64(11)))
		})

		ginkgo.It("stamps the update time on the returned entry", func() {
			existingArticle.UpdatedAt = time.Now().Add(-time.Hour)
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.UpdateEntry(ctx, articles.ID, existingArticle.ID, domain.EntryData{"views": float64(11)})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.UpdatedAt).To(gomega.BeTemporally(">", existingArticle.UpdatedAt))
		})

		ginkgo.It("treats an explicit null as clearing the field", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.UpdateEntry(ctx, articles.ID, existingArticle.ID, domain.EntryData{"views": nil})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Data).NotTo(gomega.HaveKey("views"))
		})

		ginkgo.It("rejects clearing a required field", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(articles, nil)

			_, err := service.UpdateEntry(ctx, articles.ID, existingArticle.ID, domain.EntryData{"title": nil})

			validationErrs, ok := err.(domain.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(validationErrs[0].Rule).To(gomega.Equal(domain.RuleMissingRequiredField))
		})

		ginkgo.It("keeps updating entries that hold data for a removed field", func() {
			trimmed := articles
			trimmedFields := make([]domain.Field, len(articles.Fields))
			copy(trimmedFields, articles.Fields)
			trimmed.Fields = trimmedFields
			gomega.Expect(trimmed.RemoveField("views")).To(gomega.Succeed())

			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), articles.ID).Return(trimmed, nil)

			var saved domain.Entry
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry domain.Entry) error {
				saved = entry
				return nil
			})

			updated, err := service.UpdateEntry(ctx, articles.ID, existingArticle.ID, domain.EntryData{"title": "Updated"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Data["title"]).To(gomega.Equal("Updated"))
			gomega.Expect(updated.Data).NotTo(gomega.HaveKey("views"), "the removed field is dropped from the validated data")
			gomega.Expect(saved.Data).NotTo(gomega.HaveKey("views"))
		})
	})

	ginkgo.Context("DeleteEntry", func() {
		ginkgo.It("deletes an existing entry", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), existingArticle.ID).Return(existingArticle, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), existingArticle.ID).Return(nil)

			err := service.DeleteEntry(ctx, articles.ID, existingArticle.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("propagates not found", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID("missing")).Return(domain.Entry{}, usecases.ErrEntryNotFound)

			err := service.DeleteEntry(ctx, articles.ID, domain.ID("missing"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrEntryNotFound))
		})
	})
})
