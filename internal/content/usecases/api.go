package usecases

import (
	"context"

	"atlas-cms/internal/content/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/content/usecases/api.go

// ContentTypeSummary pairs a content type with how many entries it holds.
type ContentTypeSummary struct {
	domain.ContentType
	EntryCount int64
}

type ContentTypeService interface {
	CreateContentType(ctx context.Context, contentType domain.ContentType) error
	GetContentType(ctx context.Context, id domain.ID) (domain.ContentType, error)
	GetContentTypeByAPIIdentifier(ctx context.Context, apiIdentifier string) (domain.ContentType, error)
	ListContentTypes(ctx context.Context, pagination Pagination) ([]ContentTypeSummary, int, error)
	UpdateContentType(ctx context.Context, contentType domain.ContentType) error
	AddField(ctx context.Context, id domain.ID, field domain.Field) (domain.ContentType, error)
	RemoveField(ctx context.Context, id domain.ID, identifier string) (domain.ContentType, error)
	DeleteContentType(ctx context.Context, id domain.ID) error
}

type EntryService interface {
	CreateEntry(ctx context.Context, contentTypeID domain.ID, payload domain.EntryData) (domain.Entry, error)
	GetEntry(ctx context.Context, contentTypeID, entryID domain.ID) (domain.Entry, error)
	ListEntries(ctx context.Context, contentTypeID domain.ID, pagination Pagination) ([]domain.Entry, int, error)
	UpdateEntry(ctx context.Context, contentTypeID, entryID domain.ID, partial domain.EntryData) (domain.Entry, error)
	DeleteEntry(ctx context.Context, contentTypeID, entryID domain.ID) error
}
