package internal

import (
	"time"

	"atlas-cms/internal/plans/domain"
)

type PlanCreateRequest struct {
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	Destination  string  `json:"destination"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	CoverAssetID string  `json:"cover_asset_id"`
}

func (r PlanCreateRequest) ToDomain() (domain.Plan, error) {
	return domain.NewPlanBuilder().
		WithSlug(r.Slug).
		WithTitle(r.Title).
		WithSummary(r.Summary).
		WithDestination(r.Destination).
		WithDuration(r.DurationDays).
		WithPrice(r.Price, r.Currency).
		WithCoverAsset(r.CoverAssetID).
		Build()
}

type PlanUpdateRequest struct {
	Title        *string  `json:"title"`
	Summary      *string  `json:"summary"`
	Destination  *string  `json:"destination"`
	DurationDays *int     `json:"duration_days"`
	Price        *float64 `json:"price"`
	Currency     *string  `json:"currency"`
	CoverAssetID *string  `json:"cover_asset_id"`
}

type PlanResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Destination  string    `json:"destination,omitempty"`
	DurationDays int       `json:"duration_days"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	CoverAssetID string    `json:"cover_asset_id,omitempty"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToPlanResponse(plan domain.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID.String(),
		Slug:         plan.Slug,
		Title:        plan.Title,
		Summary:      plan.Summary,
		Destination:  plan.Destination,
		DurationDays: plan.DurationDays,
		Price:        plan.Price,
		Currency:     plan.Currency,
		CoverAssetID: plan.CoverAssetID,
		Published:    plan.Published,
		CreatedAt:    plan.CreatedAt,
		UpdatedAt:    plan.UpdatedAt,
	}
}
