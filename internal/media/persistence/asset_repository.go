package persistence

import (
	"context"
	"errors"
	"fmt"

	"atlas-cms/internal/infra/sql"
	"atlas-cms/internal/media/domain"
	"atlas-cms/internal/media/persistence/internal"
	"atlas-cms/internal/media/usecases"
)

func NewAssetRepository(orm sql.ORM) (*SimpleAssetRepository, error) {
	err := orm.AutoMigrate(&internal.Asset{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleAssetRepository{
		orm: orm,
	}, nil
}

var _ usecases.AssetRepository = (*SimpleAssetRepository)(nil)

type SimpleAssetRepository struct {
	orm sql.ORM
}

func (r *SimpleAssetRepository) Create(ctx context.Context, asset domain.Asset) error {
	entity := internal.FromAsset(asset)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimpleAssetRepository) GetByID(ctx context.Context, id domain.ID) (domain.Asset, error) {
	var entity internal.Asset
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Asset{}, usecases.ErrAssetNotFound
	}

	if err != nil {
		return domain.Asset{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAssetRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Asset, int64, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Asset{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	var entities []internal.Asset
	err = r.orm.
		WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	result := make([]domain.Asset, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, total, nil
}

func (r *SimpleAssetRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Asset{ID: id.String()}).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: database query: %v", usecases.ErrStorageUnavailable, err)
}
