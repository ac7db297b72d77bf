package usecases

import (
	"context"

	"atlas-cms/internal/plans/domain"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/plans/usecases/api_mock.go -package=usecases -mock_names=PlanService=MockPlanService

type PlanUpdate struct {
	Title        *string
	Summary      *string
	Destination  *string
	DurationDays *int
	Price        *float64
	Currency     *string
	CoverAssetID *string
}

type PlanService interface {
	CreatePlan(ctx context.Context, plan domain.Plan) error
	GetPlan(ctx context.Context, id domain.ID) (domain.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (domain.Plan, error)
	ListPlans(ctx context.Context, filter ListFilter, pagination Pagination) ([]domain.Plan, int64, error)
	UpdatePlan(ctx context.Context, id domain.ID, update PlanUpdate) (domain.Plan, error)
	PublishPlan(ctx context.Context, id domain.ID) (domain.Plan, error)
	UnpublishPlan(ctx context.Context, id domain.ID) (domain.Plan, error)
	ArchivePlan(ctx context.Context, id domain.ID) error
}
