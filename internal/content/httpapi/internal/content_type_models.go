package internal

import (
	"time"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/usecases"
)

type FieldRequest struct {
	Identifier string         `json:"identifier"`
	Label      string         `json:"label"`
	Kind       string         `json:"kind"`
	Required   bool           `json:"required"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func (r FieldRequest) ToDomain() (domain.Field, error) {
	kind, err := domain.ParseFieldKind(r.Kind)
	if err != nil {
		return domain.Field{}, err
	}

	return domain.NewField(r.Identifier, r.Label, kind, r.Required, domain.FieldMetadata(r.Metadata))
}

type ContentTypeCreateRequest struct {
	APIIdentifier string         `json:"api_identifier"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Fields        []FieldRequest `json:"fields"`
}

type ContentTypeUpdateRequest struct {
	APIIdentifier string `json:"api_identifier"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

type FieldResponse struct {
	Identifier string         `json:"identifier"`
	Label      string         `json:"label"`
	Kind       string         `json:"kind"`
	Required   bool           `json:"required"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type ContentTypeResponse struct {
	ID            string          `json:"id"`
	APIIdentifier string          `json:"api_identifier"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Fields        []FieldResponse `json:"fields"`
	EntryCount    *int64          `json:"entry_count,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToContentTypeResponse exposes only the active fields: removed fields stay
// in storage but never in API output.
func ToContentTypeResponse(value domain.ContentType) ContentTypeResponse {
	active := value.ActiveFields()
	fields := make([]FieldResponse, len(active))
	for i, field := range active {
		fields[i] = FieldResponse{
			Identifier: field.Identifier,
			Label:      field.Label,
			Kind:       string(field.Kind),
			Required:   field.Required,
			Metadata:   field.Metadata,
		}
	}

	return ContentTypeResponse{
		ID:            value.ID.String(),
		APIIdentifier: value.APIIdentifier,
		Name:          value.Name,
		Description:   value.Description,
		Fields:        fields,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}

func ToContentTypeSummaryResponse(value usecases.ContentTypeSummary) ContentTypeResponse {
	response := ToContentTypeResponse(value.ContentType)
	count := value.EntryCount
	response.EntryCount = &count
	return response
}
