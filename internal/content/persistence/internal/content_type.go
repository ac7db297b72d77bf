package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"atlas-cms/internal/content/domain"
)

type FieldDefinition struct {
	Identifier string         `json:"identifier"`
	Label      string         `json:"label"`
	Kind       string         `json:"kind"`
	Required   bool           `json:"required"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Inactive   bool           `json:"inactive,omitempty"`
}

// FieldList stores the full field definitions of a content type as one JSON
// column, keeping a schema change a single-row write.
type FieldList []FieldDefinition

func (v FieldList) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *FieldList) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return errors.New("unsupported type for FieldList")
	}
}

type ContentType struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	APIIdentifier string    `json:"api_identifier" gorm:"uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Fields        FieldList `json:"fields" gorm:"type:jsonb"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ContentType) TableName() string {
	return "content_types"
}

func (t ContentType) ToDomain() domain.ContentType {
	fields := make([]domain.Field, len(t.Fields))
	for i, field := range t.Fields {
		fields[i] = domain.Field{
			Identifier: field.Identifier,
			Label:      field.Label,
			Kind:       domain.FieldKind(field.Kind),
			Required:   field.Required,
			Metadata:   domain.FieldMetadata(field.Metadata),
			Inactive:   field.Inactive,
		}
	}

	return domain.ContentType{
		ID:            domain.ID(t.ID),
		APIIdentifier: t.APIIdentifier,
		Name:          t.Name,
		Description:   t.Description,
		Fields:        fields,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromContentType(value domain.ContentType) ContentType {
	fields := make(FieldList, len(value.Fields))
	for i, field := range value.Fields {
		fields[i] = FieldDefinition{
			Identifier: field.Identifier,
			Label:      field.Label,
			Kind:       string(field.Kind),
			Required:   field.Required,
			Metadata:   field.Metadata,
			Inactive:   field.Inactive,
		}
	}

	return ContentType{
		ID:            value.ID.String(),
		APIIdentifier: value.APIIdentifier,
		Name:          value.Name,
		Description:   value.Description,
		Fields:        fields,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
