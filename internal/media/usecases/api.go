package usecases

import (
	"context"
	"io"

	"atlas-cms/internal/media/domain"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/media/usecases/api_mock.go -package=usecases -mock_names=AssetService=MockAssetService

type UploadCommand struct {
	FileName   string
	MimeType   string
	UploadedBy string
	Content    io.Reader
}

type AssetService interface {
	Upload(ctx context.Context, cmd UploadCommand) (domain.Asset, error)
	GetAsset(ctx context.Context, id domain.ID) (domain.Asset, error)
	OpenAsset(ctx context.Context, id domain.ID) (domain.Asset, io.ReadCloser, error)
	ListAssets(ctx context.Context, pagination Pagination) ([]domain.Asset, int64, error)
	DeleteAsset(ctx context.Context, id domain.ID) error
}
