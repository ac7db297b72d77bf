package usecases

import (
	"context"
	"errors"

	"atlas-cms/internal/media/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/media/usecases/repository_port_mock.go -package=usecases -mock_names=AssetRepository=MockAssetRepository

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type Pagination struct {
	Limit  int
	Offset int
}

type AssetRepository interface {
	Create(ctx context.Context, asset domain.Asset) error
	GetByID(ctx context.Context, id domain.ID) (domain.Asset, error)
	FindAll(ctx context.Context, pagination Pagination) ([]domain.Asset, int64, error)
	Delete(ctx context.Context, id domain.ID) error
}
