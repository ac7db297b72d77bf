package usecases

import (
	"context"
	"errors"

	"atlas-cms/internal/content/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/content/usecases/repository_port_mock.go -package=usecases -mock_names=ContentTypeRepository=MockContentTypeRepository,EntryRepository=MockEntryRepository

var (
	ErrContentTypeNotFound    = errors.New("content type not found")
	ErrContentTypeDuplicated  = errors.New("content type already exists")
	ErrContentTypeHasEntries  = errors.New("content type still has entries")
	ErrAPIIdentifierImmutable = errors.New("api identifier cannot change once entries exist")
	ErrEntryNotFound          = errors.New("entry not found")
	ErrStorageUnavailable     = errors.New("storage unavailable")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type ContentTypeRepository interface {
	Create(context.Context, domain.ContentType) error
	GetByID(context.Context, domain.ID) (domain.ContentType, error)
	GetByAPIIdentifier(context.Context, string) (domain.ContentType, error)
	Update(context.Context, domain.ContentType) error
	FindAll(context.Context, Pagination) ([]domain.ContentType, int, error)
	Delete(context.Context, domain.ID) error
}

type EntryRepository interface {
	Create(context.Context, domain.Entry) error
	GetByID(context.Context, domain.ID) (domain.Entry, error)
	Update(context.Context, domain.Entry) error
	FindAllByContentType(context.Context, domain.ID, Pagination) ([]domain.Entry, int, error)
	CountByContentType(context.Context, domain.ID) (int64, error)
	Delete(context.Context, domain.ID) error
}
