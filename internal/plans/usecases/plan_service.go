package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atlas-cms/internal/plans/domain"
)

func NewPlanService(repository PlanRepository) *SimplePlanService {
	return &SimplePlanService{
		repository: repository,
	}
}

var _ PlanService = &SimplePlanService{}

type SimplePlanService struct {
	repository PlanRepository
}

func (s *SimplePlanService) CreatePlan(ctx context.Context, plan domain.Plan) error {
	existing, err := s.repository.GetBySlug(ctx, plan.Slug)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		return fmt.Errorf("checking slug: %w", err)
	}
	if existing.ID != "" {
		return ErrPlanDuplicated
	}

	if err := s.repository.Create(ctx, plan); err != nil {
		return fmt.Errorf("creating plan: %w", err)
	}

	slog.Info("plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("slug", plan.Slug),
	)

	return nil
}

func (s *SimplePlanService) GetPlan(ctx context.Context, id domain.ID) (domain.Plan, error) {
	plan, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("getting plan: %w", err)
	}
	if plan.Archived {
		return domain.Plan{}, ErrPlanNotFound
	}

	return plan, nil
}

func (s *SimplePlanService) GetPlanBySlug(ctx context.Context, slug string) (domain.Plan, error) {
	plan, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("getting plan by slug: %w", err)
	}
	if plan.Archived {
		return domain.Plan{}, ErrPlanNotFound
	}

	return plan, nil
}

func (s *SimplePlanService) ListPlans(ctx context.Context, filter ListFilter, pagination Pagination) ([]domain.Plan, int64, error) {
	plans, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing plans: %w", err)
	}

	return plans, total, nil
}

func (s *SimplePlanService) UpdatePlan(ctx context.Context, id domain.ID, update PlanUpdate) (domain.Plan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}

	if update.Title != nil {
		if *update.Title == "" {
			return domain.Plan{}, domain.ErrEmptyTitle
		}
		plan.Title = *update.Title
	}
	if update.Summary != nil {
		plan.Summary = *update.Summary
	}
	if update.Destination != nil {
		plan.Destination = *update.Destination
	}
	if update.DurationDays != nil {
		if *update.DurationDays < 1 {
			return domain.Plan{}, domain.ErrInvalidDuration
		}
		plan.DurationDays = *update.DurationDays
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return domain.Plan{}, domain.ErrNegativePrice
		}
		plan.Price = *update.Price
	}
	if update.Currency != nil {
		if len(*update.Currency) != 3 {
			return domain.Plan{}, domain.ErrInvalidCurrency
		}
		plan.Currency = *update.Currency
	}
	if update.CoverAssetID != nil {
		plan.CoverAssetID = *update.CoverAssetID
	}

	if err := s.repository.Update(ctx, plan); err != nil {
		return domain.Plan{}, fmt.Errorf("updating plan: %w", err)
	}

	return plan, nil
}

func (s *SimplePlanService) PublishPlan(ctx context.Context, id domain.ID) (domain.Plan, error) {
	return s.setPublished(ctx, id, true)
}

func (s *SimplePlanService) UnpublishPlan(ctx context.Context, id domain.ID) (domain.Plan, error) {
	return s.setPublished(ctx, id, false)
}

func (s *SimplePlanService) setPublished(ctx context.Context, id domain.ID, published bool) (domain.Plan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}

	if published {
		plan.Publish()
	} else {
		plan.Unpublish()
	}

	if err := s.repository.Update(ctx, plan); err != nil {
		return domain.Plan{}, fmt.Errorf("updating plan: %w", err)
	}

	return plan, nil
}

func (s *SimplePlanService) ArchivePlan(ctx context.Context, id domain.ID) error {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return err
	}

	plan.Archive()
	if err := s.repository.Update(ctx, plan); err != nil {
		return fmt.Errorf("archiving plan: %w", err)
	}

	slog.Info("plan archived", slog.String("plan_id", plan.ID.String()))

	return nil
}
