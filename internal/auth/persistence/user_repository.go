package persistence

import (
	"context"
	"errors"
	"fmt"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/persistence/internal"
	"atlas-cms/internal/auth/usecases"
	"atlas-cms/internal/infra/sql"
)

func NewUserRepository(orm sql.ORM) (*SimpleUserRepository, error) {
	err := orm.AutoMigrate(&internal.User{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUserRepository{
		orm: orm,
	}, nil
}

var _ usecases.UserRepository = (*SimpleUserRepository)(nil)

type SimpleUserRepository struct {
	orm sql.ORM
}

func (r *SimpleUserRepository) Create(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database query: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) GetByID(ctx context.Context, id domain.ID) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		Where("email = ?", email).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) Update(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database query: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.User, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.User{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.User
	err = r.orm.
		WithContext(ctx).
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.User, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.User{}).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return total, nil
}

func (r *SimpleUserRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.User{ID: id.String()}).
		Error()
	if err != nil {
		return fmt.Errorf("database query: %w", err)
	}

	return nil
}
