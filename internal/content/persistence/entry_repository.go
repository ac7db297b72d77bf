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

func NewEntryRepository(orm sql.ORM) (*SimpleEntryRepository, error) {
	err := orm.AutoMigrate(&internal.Entry{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleEntryRepository{
		orm: orm,
	}, nil
}

var _ usecases.EntryRepository = (*SimpleEntryRepository)(nil)

type SimpleEntryRepository struct {
	orm sql.ORM
}

func (r *SimpleEntryRepository) Create(ctx context.Context, entry domain.Entry) error {
	entity := internal.FromEntry(entry)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimpleEntryRepository) GetByID(ctx context.Context, id domain.ID) (domain.Entry, error) {
	var entity internal.Entry
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Entry{}, usecases.ErrEntryNotFound
	}

	if err != nil {
		return domain.Entry{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleEntryRepository) Update(ctx context.Context, entry domain.Entry) error {
	entity := internal.FromEntry(entry)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimpleEntryRepository) FindAllByContentType(ctx context.Context, contentTypeID domain.ID, pagination usecases.Pagination) ([]domain.Entry, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Entry{}).
		Where("content_type_id = ?", contentTypeID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	var entities []internal.Entry
	err = r.orm.
		WithContext(ctx).
		Where("content_type_id = ?", contentTypeID.String()).
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	result := make([]domain.Entry, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleEntryRepository) CountByContentType(ctx context.Context, contentTypeID domain.ID) (int64, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Entry{}).
		Where("content_type_id = ?", contentTypeID.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, storageError(err)
	}

	return total, nil
}

func (r *SimpleEntryRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Entry{ID: id.String()}).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}
