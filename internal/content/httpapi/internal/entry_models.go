package internal

import (
	"time"

	"atlas-cms/internal/content/domain"
)

type EntryResponse struct {
	ID            string         `json:"id"`
	ContentTypeID string         `json:"content_type_id"`
	Data          map[string]any `json:"data"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func ToEntryResponse(value domain.Entry) EntryResponse {
	return EntryResponse{
		ID:            value.ID.String(),
		ContentTypeID: value.ContentTypeID.String(),
		Data:          value.Data,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
