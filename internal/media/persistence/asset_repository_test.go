package persistence_test

import (
	"context"
	"time"

	"atlas-cms/internal/infra/sql"
	"atlas-cms/internal/infra/utils"
	"atlas-cms/internal/media/domain"
	"atlas-cms/internal/media/persistence"
	"atlas-cms/internal/media/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleAssetRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleAssetRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		repository, err = persistence.NewAssetRepository(orm)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	newAsset := func() domain.Asset {
		id := utils.GenerateUUID()
		return domain.Asset{
			ID:         domain.ID(id),
			FileName:   "hero.png",
			MimeType:   "image/png",
			Size:       1024,
			StorageKey: id + ".png",
			UploadedBy: "user-1",
			CreatedAt:  time.Now(),
		}
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.It("round trips an asset", func() {
			asset := newAsset()
			gomega.Expect(repository.Create(ctx, asset)).To(gomega.Succeed())

			found, err := repository.GetByID(ctx, asset.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.FileName).To(gomega.Equal("hero.png"))
			gomega.Expect(found.MimeType).To(gomega.Equal("image/png"))
			gomega.Expect(found.Size).To(gomega.Equal(int64(1024)))
			gomega.Expect(found.StorageKey).To(gomega.Equal(asset.StorageKey))
			gomega.Expect(found.UploadedBy).To(gomega.Equal("user-1"))
		})

		ginkgo.It("maps a missing asset to the not found sentinel", func() {
			_, err := repository.GetByID(ctx, domain.ID(utils.GenerateUUID()))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAssetNotFound))
		})
	})

	ginkgo.Context("FindAll", func() {
		ginkgo.It("counts and pages the collection", func() {
			before, _, err := repository.FindAll(ctx, usecases.Pagination{Limit: 1, Offset: 0})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(len(before)).To(gomega.BeNumerically("<=", 1))

			_, baseline, err := repository.FindAll(ctx, usecases.Pagination{Limit: 1, Offset: 0})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			for i := 0; i < 3; i++ {
				gomega.Expect(repository.Create(ctx, newAsset())).To(gomega.Succeed())
			}

			page, total, err := repository.FindAll(ctx, usecases.Pagination{Limit: 2, Offset: 0})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(baseline + 3))
			gomega.Expect(page).To(gomega.HaveLen(2))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("removes the asset", func() {
			asset := newAsset()
			gomega.Expect(repository.Create(ctx, asset)).To(gomega.Succeed())
			gomega.Expect(repository.Delete(ctx, asset.ID)).To(gomega.Succeed())

			_, err := repository.GetByID(ctx, asset.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAssetNotFound))
		})
	})
})
