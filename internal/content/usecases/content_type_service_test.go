package usecases_test

import (
	"context"
	"errors"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/usecases"
	mockusecases "atlas-cms/test/unit/doubles/content/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("ContentTypeService", func() {
	var (
		ctrl        *gomock.Controller
		mockRepo    *mockusecases.MockContentTypeRepository
		mockEntries *mockusecases.MockEntryRepository
		service     *usecases.SimpleContentTypeService
		ctx         context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockContentTypeRepository(ctrl)
		mockEntries = mockusecases.NewMockEntryRepository(ctrl)
		service = usecases.NewContentTypeService(mockRepo, mockEntries)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	newContentType := func(apiIdentifier string) domain.ContentType {
		title, err := domain.NewField("title", "Title", domain.FieldKindText, true, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		contentType, err := domain.NewContentTypeBuilder().
			WithAPIIdentifier(apiIdentifier).
			WithName("Articles").
			WithField(title).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return contentType
	}

	ginkgo.Context("CreateContentType", func() {
		ginkgo.It("persists a new content type", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByAPIIdentifier(gomock.Any(), "articles").Return(domain.ContentType{}, usecases.ErrContentTypeNotFound)
			mockRepo.EXPECT().Create(gomock.Any(), contentType).Return(nil)

			err := service.CreateContentType(ctx, contentType)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("rejects a duplicated api identifier", func() {
			contentType := newContentType("articles")
			existing := newContentType("articles")
			mockRepo.EXPECT().GetByAPIIdentifier(gomock.Any(), "articles").Return(existing, nil)

			err := service.CreateContentType(ctx, contentType)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrContentTypeDuplicated))
		})

		ginkgo.It("wraps storage failures", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByAPIIdentifier(gomock.Any(), "articles").Return(domain.ContentType{}, usecases.ErrStorageUnavailable)

			err := service.CreateContentType(ctx, contentType)
			gomega.Expect(errors.Is(err, usecases.ErrStorageUnavailable)).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("ListContentTypes", func() {
		ginkgo.It("pairs each content type with its entry count", func() {
			articles := newContentType("articles")
			authors := newContentType("authors")
			pagination := usecases.Pagination{Limit: 20, Offset: 0}
			mockRepo.EXPECT().FindAll(gomock.Any(), pagination).Return([]domain.ContentType{articles, authors}, 2, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), articles.ID).Return(int64(7), nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), authors.ID).Return(int64(0), nil)

			summaries, total, err := service.ListContentTypes(ctx, pagination)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(2))
			gomega.Expect(summaries).To(gomega.HaveLen(2))
			gomega.Expect(summaries[0].EntryCount).To(gomega.Equal(int64(7)))
			gomega.Expect(summaries[1].EntryCount).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("UpdateContentType", func() {
		ginkgo.It("updates name and description freely", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated := contentType
			updated.Name = "Posts"
			err := service.UpdateContentType(ctx, updated)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("refuses to rename the api identifier once entries exist", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), contentType.ID).Return(int64(3), nil)

			renamed := contentType
			renamed.APIIdentifier = "posts"
			err := service.UpdateContentType(ctx, renamed)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAPIIdentifierImmutable))
		})

		ginkgo.It("allows renaming while the content type is empty", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), contentType.ID).Return(int64(0), nil)
			mockRepo.EXPECT().GetByAPIIdentifier(gomock.Any(), "posts").Return(domain.ContentType{}, usecases.ErrContentTypeNotFound)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			renamed := contentType
			renamed.APIIdentifier = "posts"
			err := service.UpdateContentType(ctx, renamed)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("refuses renaming onto another content type", func() {
			contentType := newContentType("articles")
			other := newContentType("posts")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), contentType.ID).Return(int64(0), nil)
			mockRepo.EXPECT().GetByAPIIdentifier(gomock.Any(), "posts").Return(other, nil)

			renamed := contentType
			renamed.APIIdentifier = "posts"
			err := service.UpdateContentType(ctx, renamed)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrContentTypeDuplicated))
		})
	})

	ginkgo.Context("AddField", func() {
		ginkgo.It("appends the field and persists", func() {
			contentType := newContentType("articles")
			views, err := domain.NewField("views", "", domain.FieldKindNumber, false, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.AddField(ctx, contentType.ID, views)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.ActiveFields()).To(gomega.HaveLen(2))
		})

		ginkgo.It("surfaces duplicated identifiers without persisting", func() {
			contentType := newContentType("articles")
			duplicate, err := domain.NewField("title", "", domain.FieldKindNumber, false, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)

			_, err = service.AddField(ctx, contentType.ID, duplicate)
			gomega.Expect(err).To(gomega.MatchError(domain.ErrDuplicateFieldIdentifier))
		})
	})

	ginkgo.Context("RemoveField", func() {
		ginkgo.It("marks the field inactive and persists", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.RemoveField(ctx, contentType.ID, "title")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.ActiveFields()).To(gomega.BeEmpty())
			gomega.Expect(updated.Fields).To(gomega.HaveLen(1))
		})

		ginkgo.It("surfaces unknown identifiers", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)

			_, err := service.RemoveField(ctx, contentType.ID, "missing")
			gomega.Expect(err).To(gomega.MatchError(domain.ErrFieldNotFound))
		})
	})

	ginkgo.Context("DeleteContentType", func() {
		ginkgo.It("deletes an empty content type", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), contentType.ID).Return(int64(0), nil)
			mockRepo.EXPECT().Delete(gomock.Any(), contentType.ID).Return(nil)

			err := service.DeleteContentType(ctx, contentType.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("refuses while entries exist", func() {
			contentType := newContentType("articles")
			mockRepo.EXPECT().GetByID(gomock.Any(), contentType.ID).Return(contentType, nil)
			mockEntries.EXPECT().CountByContentType(gomock.Any(), contentType.ID).Return(int64(12), nil)

			err := service.DeleteContentType(ctx, contentType.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrContentTypeHasEntries))
		})

		ginkgo.It("propagates not found", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID("missing")).Return(domain.ContentType{}, usecases.ErrContentTypeNotFound)

			err := service.DeleteContentType(ctx, domain.ID("missing"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrContentTypeNotFound))
		})
	})
})
