package persistence_test

import (
	"context"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/persistence"
	"atlas-cms/internal/content/usecases"
	"atlas-cms/internal/infra/sql"
	"atlas-cms/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("EntryRepository", func() {
	var (
		repository    *persistence.SimpleEntryRepository
		ctx           context.Context
		contentTypeID domain.ID
	)

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repository, err = persistence.NewEntryRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
		contentTypeID = domain.ID(utils.GenerateUUID())
	})

	buildEntry := func(data domain.EntryData) domain.Entry {
		entry, err := domain.NewEntryBuilder().
			WithContentTypeID(contentTypeID).
			WithData(data).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return entry
	}

	ginkgo.It("round trips an entry with nested data", func() {
		entry := buildEntry(domain.EntryData{
			"title":     "Hello",
			"views":     float64(42),
			"published": true,
		})
		gomega.Expect(repository.Create(ctx, entry)).To(gomega.Succeed())

		found, err := repository.GetByID(ctx, entry.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(found.ContentTypeID).To(gomega.Equal(contentTypeID))
		gomega.Expect(found.Data["title"]).To(gomega.Equal("Hello"))
		gomega.Expect(found.Data["views"]).To(gomega.Equal(float64(42)))
		gomega.Expect(found.Data["published"]).To(gomega.Equal(true))
	})

	ginkgo.It("maps a missing row to not found", func() {
		_, err := repository.GetByID(ctx, domain.ID(utils.GenerateUUID()))
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrEntryNotFound))
	})

	ginkgo.It("updates the data column in place", func() {
		entry := buildEntry(domain.EntryData{"title": "Hello"})
		gomega.Expect(repository.Create(ctx, entry)).To(gomega.Succeed())

		entry.Data = domain.EntryData{"title": "Updated"}
		gomega.Expect(repository.Update(ctx, entry)).To(gomega.Succeed())

		found, err := repository.GetByID(ctx, entry.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(found.Data["title"]).To(gomega.Equal("Updated"))
	})

	ginkgo.It("scopes listing and counting to the content type", func() {
		for range 3 {
			gomega.Expect(repository.Create(ctx, buildEntry(domain.EntryData{"title": "scoped"}))).To(gomega.Succeed())
		}

		other, err := domain.NewEntryBuilder().
			WithContentTypeID(domain.ID(utils.GenerateUUID())).
			WithData(domain.EntryData{"title": "other"}).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repository.Create(ctx, other)).To(gomega.Succeed())

		entries, total, err := repository.FindAllByContentType(ctx, contentTypeID, usecases.Pagination{Limit: 10, Offset: 0})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(total).To(gomega.Equal(3))
		gomega.Expect(entries).To(gomega.HaveLen(3))

		count, err := repository.CountByContentType(ctx, contentTypeID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(count).To(gomega.Equal(int64(3)))
	})

	ginkgo.It("paginates entries", func() {
		for range 5 {
			gomega.Expect(repository.Create(ctx, buildEntry(domain.EntryData{"title": "paged"}))).To(gomega.Succeed())
		}

		page, total, err := repository.FindAllByContentType(ctx, contentTypeID, usecases.Pagination{Limit: 2, Offset: 2})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(total).To(gomega.Equal(5))
		gomega.Expect(page).To(gomega.HaveLen(2))
	})

	ginkgo.It("deletes an entry", func() {
		entry := buildEntry(domain.EntryData{"title": "gone"})
		gomega.Expect(repository.Create(ctx, entry)).To(gomega.Succeed())

		gomega.Expect(repository.Delete(ctx, entry.ID)).To(gomega.Succeed())

		_, err := repository.GetByID(ctx, entry.ID)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrEntryNotFound))
	})
})
