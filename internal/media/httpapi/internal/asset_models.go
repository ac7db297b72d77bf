package internal

import (
	"time"

	"atlas-cms/internal/media/domain"
)

type AssetResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToAssetResponse(asset domain.Asset) AssetResponse {
	return AssetResponse{
		ID:         asset.ID.String(),
		FileName:   asset.FileName,
		MimeType:   asset.MimeType,
		Size:       asset.Size,
		UploadedBy: asset.UploadedBy,
		CreatedAt:  asset.CreatedAt,
	}
}
