package internal

import (
	"time"

	"atlas-cms/internal/media/domain"
)

type Asset struct {
	ID         string `gorm:"primaryKey"`
	FileName   string `gorm:"not null"`
	MimeType   string `gorm:"not null"`
	Size       int64
	StorageKey string `gorm:"uniqueIndex;not null"`
	UploadedBy string `gorm:"index"`
	CreatedAt  time.Time
}

func (Asset) TableName() string {
	return "assets"
}

func (a Asset) ToDomain() domain.Asset {
	return domain.Asset{
		ID:         domain.ID(a.ID),
		FileName:   a.FileName,
		MimeType:   a.MimeType,
		Size:       a.Size,
		StorageKey: a.StorageKey,
		UploadedBy: a.UploadedBy,
		CreatedAt:  a.CreatedAt,
	}
}

func FromAsset(asset domain.Asset) Asset {
	return Asset{
		ID:         asset.ID.String(),
		FileName:   asset.FileName,
		MimeType:   asset.MimeType,
		Size:       asset.Size,
		StorageKey: asset.StorageKey,
		UploadedBy: asset.UploadedBy,
		CreatedAt:  asset.CreatedAt,
	}
}
