package domain

import (
	"errors"
	"time"

	"atlas-cms/internal/infra/utils"
)

type ID string

func (i ID) String() string {
	return string(i)
}

var (
	ErrInvalidSlug     = errors.New("slug must be lowercase letters, digits and hyphens")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidDuration = errors.New("duration must be at least one day")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a three letter code")
)

// Plan is a published tourism offering: a destination, a duration and a
// price, optionally illustrated by a cover asset.
type Plan struct {
	ID           ID
	Slug         string
	Title        string
	Summary      string
	Destination  string
	DurationDays int
	Price        float64
	Currency     string
	CoverAssetID string
	Published    bool
	Archived     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Plan) Publish() {
	p.Published = true
	p.UpdatedAt = time.Now()
}

func (p *Plan) Unpublish() {
	p.Published = false
	p.UpdatedAt = time.Now()
}

// Archive is the soft delete: archived plans disappear from listings but the
// row survives so entries referencing the plan stay resolvable.
func (p *Plan) Archive() {
	p.Archived = true
	p.Published = false
	p.UpdatedAt = time.Now()
}

func NewPlanBuilder() *planBuilder {
	return &planBuilder{}
}

type planBuilder struct {
	actions []planHandler
}

type planHandler func(p *Plan) error

func (b *planBuilder) WithSlug(slug string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		if !utils.IsSlug(slug) {
			return ErrInvalidSlug
		}
		p.Slug = slug
		return nil
	})
	return b
}

func (b *planBuilder) WithTitle(title string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		if title == "" {
			return ErrEmptyTitle
		}
		p.Title = title
		return nil
	})
	return b
}

func (b *planBuilder) WithSummary(summary string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		p.Summary = summary
		return nil
	})
	return b
}

func (b *planBuilder) WithDestination(destination string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		p.Destination = destination
		return nil
	})
	return b
}

func (b *planBuilder) WithDuration(days int) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		if days < 1 {
			return ErrInvalidDuration
		}
		p.DurationDays = days
		return nil
	})
	return b
}

func (b *planBuilder) WithPrice(price float64, currency string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		if price < 0 {
			return ErrNegativePrice
		}
		if len(currency) != 3 {
			return ErrInvalidCurrency
		}
		p.Price = price
		p.Currency = currency
		return nil
	})
	return b
}

func (b *planBuilder) WithCoverAsset(assetID string) *planBuilder {
	b.actions = append(b.actions, func(p *Plan) error {
		p.CoverAssetID = assetID
		return nil
	})
	return b
}

func (b *planBuilder) Build() (Plan, error) {
	now := time.Now()
	result := Plan{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Plan{}, err
		}
	}

	return result, nil
}
