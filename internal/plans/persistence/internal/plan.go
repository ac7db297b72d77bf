package internal

import (
	"time"

	"atlas-cms/internal/plans/domain"
)

type Plan struct {
	ID           string `gorm:"primaryKey"`
	Slug         string `gorm:"uniqueIndex;not null"`
	Title        string `gorm:"not null"`
	Summary      string
	Destination  string
	DurationDays int
	Price        float64
	Currency     string
	CoverAssetID string
	Published    bool `gorm:"index"`
	Archived     bool `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Plan) TableName() string {
	return "plans"
}

func (p Plan) ToDomain() domain.Plan {
	return domain.Plan{
		ID:           domain.ID(p.ID),
		Slug:         p.Slug,
		Title:        p.Title,
		Summary:      p.Summary,
		Destination:  p.Destination,
		DurationDays: p.DurationDays,
		Price:        p.Price,
		Currency:     p.Currency,
		CoverAssetID: p.CoverAssetID,
		Published:    p.Published,
		Archived:     p.Archived,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPlan(plan domain.Plan) Plan {
	return Plan{
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
		Archived:     plan.Archived,
		CreatedAt:    plan.CreatedAt,
		UpdatedAt:    plan.UpdatedAt,
	}
}
