package domain

import (
	"errors"
	"path/filepath"
	"time"

	"atlas-cms/internal/infra/utils"
)

type ID string

func (i ID) String() string {
	return string(i)
}

var (
	ErrEmptyFileName = errors.New("file name cannot be empty")
	ErrEmptyMimeType = errors.New("mime type cannot be empty")
)

// Asset is the metadata of an uploaded file. The bytes live in a blob store
// under StorageKey; entries reference assets by ID through media fields.
type Asset struct {
	ID         ID
	FileName   string
	MimeType   string
	Size       int64
	StorageKey string
	UploadedBy string
	CreatedAt  time.Time
}

func NewAssetBuilder() *assetBuilder {
	return &assetBuilder{}
}

type assetBuilder struct {
	actions []assetHandler
}

type assetHandler func(a *Asset) error

func (b *assetBuilder) WithFileName(fileName string) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		base := filepath.Base(fileName)
		if base == "" || base == "." || base == "/" {
			return ErrEmptyFileName
		}
		a.FileName = base
		return nil
	})
	return b
}

func (b *assetBuilder) WithMimeType(mimeType string) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		if mimeType == "" {
			return ErrEmptyMimeType
		}
		a.MimeType = mimeType
		return nil
	})
	return b
}

func (b *assetBuilder) WithSize(size int64) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		a.Size = size
		return nil
	})
	return b
}

func (b *assetBuilder) WithUploadedBy(userID string) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		a.UploadedBy = userID
		return nil
	})
	return b
}

func (b *assetBuilder) Build() (Asset, error) {
	id := utils.GenerateUUID()
	result := Asset{
		ID:        ID(id),
		CreatedAt: time.Now(),
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Asset{}, err
		}
	}

	// The storage key is derived from the ID so collisions are impossible
	// and renames never move bytes.
	result.StorageKey = id + filepath.Ext(result.FileName)

	return result, nil
}
