package persistence

import (
	"context"
	"errors"
	"fmt"

	"atlas-cms/internal/infra/sql"
	"atlas-cms/internal/plans/domain"
	"atlas-cms/internal/plans/persistence/internal"
	"atlas-cms/internal/plans/usecases"
)

func NewPlanRepository(orm sql.ORM) (*SimplePlanRepository, error) {
	err := orm.AutoMigrate(&internal.Plan{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePlanRepository{
		orm: orm,
	}, nil
}

var _ usecases.PlanRepository = (*SimplePlanRepository)(nil)

type SimplePlanRepository struct {
	orm sql.ORM
}

func (r *SimplePlanRepository) Create(ctx context.Context, plan domain.Plan) error {
	entity := internal.FromPlan(plan)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimplePlanRepository) GetByID(ctx context.Context, id domain.ID) (domain.Plan, error) {
	var entity internal.Plan
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Plan{}, usecases.ErrPlanNotFound
	}

	if err != nil {
		return domain.Plan{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimplePlanRepository) GetBySlug(ctx context.Context, slug string) (domain.Plan, error) {
	var entity internal.Plan
	err := r.orm.
		WithContext(ctx).
		Where("slug = ?", slug).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Plan{}, usecases.ErrPlanNotFound
	}

	if err != nil {
		return domain.Plan{}, storageError(err)
	}

	return entity.ToDomain(), nil
}

func (r *SimplePlanRepository) Update(ctx context.Context, plan domain.Plan) error {
	entity := internal.FromPlan(plan)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (r *SimplePlanRepository) FindAll(ctx context.Context, filter usecases.ListFilter, pagination usecases.Pagination) ([]domain.Plan, int64, error) {
	scoped := func() sql.ORM {
		query := r.orm.WithContext(ctx).Where("archived = ?", false)
		if filter.PublishedOnly {
			query = query.Where("published = ?", true)
		}
		return query
	}

	var total int64
	err := scoped().
		Model(&internal.Plan{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	var entities []internal.Plan
	err = scoped().
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, storageError(err)
	}

	result := make([]domain.Plan, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, total, nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: database query: %v", usecases.ErrStorageUnavailable, err)
}
