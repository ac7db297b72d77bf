package persistence

import (
	"context"
	"errors"
	"fmt"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/persistence/internal"
	"atlas-cms/internal/content/usecases"
	"atlas-cms/internal/infra/sql"
)

func NewContentTypeRepository(orm sql.ORM) (*SimpleContentTypeRepository, error) {
	err := orm.AutoMigrate(&internal.ContentType{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleContentTypeRepository{
		orm: orm,
	}, nil
}

var _ usecases.ContentTypeRepository = (*SimpleContentTypeRepository)(nil)

type SimpleContentTypeRepository struct {
	orm sql.ORM
}

func (r *SimpleContentTypeRepository) Create(ctx context.Context, contentType domain.ContentType) error {
	entity := internal.FromContentType(contentType)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimpleContentTypeRepository) GetByID(ctx context.Context, id domain.ID) (domain.ContentType, error) {
	var entity internal.ContentType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.ContentType{}, usecases.ErrContentTypeNotFound
	}

	if err != nil {
		return domain.ContentType{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleContentTypeRepository) GetByAPIIdentifier(ctx context.Context, apiIdentifier string) (domain.ContentType, error) {
	var entity internal.ContentType
	err := r.orm.
		WithContext(ctx).
		Where("api_identifier = ?", apiIdentifier).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.ContentType{}, usecases.ErrContentTypeNotFound
	}

	if err != nil {
		return domain.ContentType{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleContentTypeRepository) Update(ctx context.Context, contentType domain.ContentType) error {
	entity := internal.FromContentType(contentType)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimpleContentTypeRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.ContentType, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.ContentType{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	var entities []internal.ContentType
	err = r.orm.
		WithContext(ctx).
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	result := make([]domain.ContentType, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleContentTypeRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.ContentType{ID: id.String()}).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

// storageError keeps the driver failure visible while letting callers match
// on usecases.ErrStorageUnavailable.
func storageError(err error) error {
	return fmt.Errorf("%w: database query: %v", usecases.ErrStorageUnavailable, err)
}
