package usecases

import (
	"context"
	"errors"

	"atlas-cms/internal/plans/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/plans/usecases/repository_port_mock.go -package=usecases -mock_names=PlanRepository=MockPlanRepository

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanDuplicated     = errors.New("plan slug already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type Pagination struct {
	Limit  int
	Offset int
}

// ListFilter narrows listings; the zero value returns every live plan.
type ListFilter struct {
	PublishedOnly bool
}

type PlanRepository interface {
	Create(ctx context.Context, plan domain.Plan) error
	GetByID(ctx context.Context, id domain.ID) (domain.Plan, error)
	GetBySlug(ctx context.Context, slug string) (domain.Plan, error)
	Update(ctx context.Context, plan domain.Plan) error
	FindAll(ctx context.Context, filter ListFilter, pagination Pagination) ([]domain.Plan, int64, error)
}
