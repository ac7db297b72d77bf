package domain

import (
	"errors"
	"time"

	"atlas-cms/internal/infra/utils"
)

var (
	ErrInvalidAPIIdentifier     = errors.New("invalid api identifier")
	ErrDuplicateFieldIdentifier = errors.New("field identifier already exists")
	ErrFieldNotFound            = errors.New("field not found")
)

type RemovalPolicy string

const (
	RemovalPolicySoft RemovalPolicy = "soft"
	RemovalPolicyHard RemovalPolicy = "hard"

	// FieldRemovalPolicy is applied on every field removal: the field is
	// marked inactive and excluded from validation and rendering while
	// historical entry data stays untouched.
	FieldRemovalPolicy = RemovalPolicySoft
)

// ContentType is a named, uniquely identified collection of field
// definitions. Field order is insertion order and survives re-fetches.
type ContentType struct {
	ID            ID
	APIIdentifier string
	Name          string
	Description   string
	Fields        []Field
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddField appends a field, keeping identifiers unique across active and
// inactive fields since stored entry data is keyed by identifier.
func (ct *ContentType) AddField(field Field) error {
	for _, existing := range ct.Fields {
		if existing.Equal(field) {
			return ErrDuplicateFieldIdentifier
		}
	}

	ct.Fields = append(ct.Fields, field)
	ct.UpdatedAt = time.Now()
	return nil
}

// RemoveField marks a field inactive per FieldRemovalPolicy.
func (ct *ContentType) RemoveField(identifier string) error {
	for i, field := range ct.Fields {
		if field.Identifier == identifier && !field.Inactive {
			ct.Fields[i].Inactive = true
			ct.UpdatedAt = time.Now()
			return nil
		}
	}

	return ErrFieldNotFound
}

// ActiveFields returns the fields driving validation and rendering, in
// insertion order.
func (ct ContentType) ActiveFields() []Field {
	result := make([]Field, 0, len(ct.Fields))
	for _, field := range ct.Fields {
		if !field.Inactive {
			result = append(result, field)
		}
	}
	return result
}

func (ct ContentType) FieldByIdentifier(identifier string) (Field, bool) {
	for _, field := range ct.Fields {
		if field.Identifier == identifier && !field.Inactive {
			return field, true
		}
	}
	return Field{}, false
}

func NewContentTypeBuilder() *contentTypeBuilder {
	return &contentTypeBuilder{}
}

type contentTypeBuilder struct {
	actions []contentTypeHandler
}

type contentTypeHandler func(ct *ContentType) error

func (b *contentTypeBuilder) WithAPIIdentifier(apiIdentifier string) *contentTypeBuilder {
	b.actions = append(b.actions, func(ct *ContentType) error {
		if !utils.IsSlug(apiIdentifier) {
			return ErrInvalidAPIIdentifier
		}
		ct.APIIdentifier = apiIdentifier
		return nil
	})
	return b
}

func (b *contentTypeBuilder) WithName(name string) *contentTypeBuilder {
	b.actions = append(b.actions, func(ct *ContentType) error {
		ct.Name = name
		return nil
	})
	return b
}

func (b *contentTypeBuilder) WithDescription(description string) *contentTypeBuilder {
	b.actions = append(b.actions, func(ct *ContentType) error {
		ct.Description = description
		return nil
	})
	return b
}

func (b *contentTypeBuilder) WithField(field Field) *contentTypeBuilder {
	b.actions = append(b.actions, func(ct *ContentType) error {
		return ct.AddField(field)
	})
	return b
}

func (b *contentTypeBuilder) WithFields(fields ...Field) *contentTypeBuilder {
	for _, field := range fields {
		b.WithField(field)
	}
	return b
}

func (b *contentTypeBuilder) Build() (ContentType, error) {
	now := time.Now()
	result := ContentType{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return ContentType{}, err
		}
	}

	return result, nil
}
