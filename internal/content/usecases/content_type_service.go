package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atlas-cms/internal/content/domain"
)

func NewContentTypeService(repository ContentTypeRepository, entryRepository EntryRepository) *SimpleContentTypeService {
	return &SimpleContentTypeService{
		repository:      repository,
		entryRepository: entryRepository,
	}
}

var _ ContentTypeService = &SimpleContentTypeService{}

type SimpleContentTypeService struct {
	repository      ContentTypeRepository
	entryRepository EntryRepository
}

func (s *SimpleContentTypeService) CreateContentType(ctx context.Context, contentType domain.ContentType) error {
	existing, err := s.repository.GetByAPIIdentifier(ctx, contentType.APIIdentifier)
	if err != nil && !errors.Is(err, ErrContentTypeNotFound) {
		slog.Error("checking existing content type", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing content type: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("content type already exists", slog.String("api_identifier", contentType.APIIdentifier))
		return ErrContentTypeDuplicated
	}

	err = s.repository.Create(ctx, contentType)
	if err != nil {
		slog.Error("creating content type", slog.String("error", err.Error()))
		return fmt.Errorf("creating content type: %w", err)
	}

	slog.Info("content type created successfully",
		slog.String("id", contentType.ID.String()),
		slog.String("api_identifier", contentType.APIIdentifier))

	return nil
}

func (s *SimpleContentTypeService) GetContentType(ctx context.Context, id domain.ID) (domain.ContentType, error) {
	contentType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrContentTypeNotFound) {
			return domain.ContentType{}, ErrContentTypeNotFound
		}
		slog.Error("getting content type", slog.String("error", err.Error()))
		return domain.ContentType{}, fmt.Errorf("getting content type: %w", err)
	}

	return contentType, nil
}

func (s *SimpleContentTypeService) GetContentTypeByAPIIdentifier(ctx context.Context, apiIdentifier string) (domain.ContentType, error) {
	contentType, err := s.repository.GetByAPIIdentifier(ctx, apiIdentifier)
	if err != nil {
		if errors.Is(err, ErrContentTypeNotFound) {
			return domain.ContentType{}, ErrContentTypeNotFound
		}
		slog.Error("getting content type by api identifier", slog.String("error", err.Error()))
		return domain.ContentType{}, fmt.Errorf("getting content type by api identifier: %w", err)
	}

	return contentType, nil
}

func (s *SimpleContentTypeService) ListContentTypes(ctx context.Context, pagination Pagination) ([]ContentTypeSummary, int, error) {
	contentTypes, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing content types", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing content types: %w", err)
	}

	summaries := make([]ContentTypeSummary, 0, len(contentTypes))
	for _, contentType := range contentTypes {
		count, err := s.entryRepository.CountByContentType(ctx, contentType.ID)
		if err != nil {
			slog.Error("counting entries", slog.String("error", err.Error()))
			return nil, 0, fmt.Errorf("counting entries: %w", err)
		}
		summaries = append(summaries, ContentTypeSummary{ContentType: contentType, EntryCount: count})
	}

	return summaries, total, nil
}

func (s *SimpleContentTypeService) UpdateContentType(ctx context.Context, contentType domain.ContentType) error {
	existing, err := s.repository.GetByID(ctx, contentType.ID)
	if err != nil {
		if errors.Is(err, ErrContentTypeNotFound) {
			return ErrContentTypeNotFound
		}
		return fmt.Errorf("getting content type: %w", err)
	}

	if contentType.APIIdentifier != existing.APIIdentifier {
		count, err := s.entryRepository.CountByContentType(ctx, contentType.ID)
		if err != nil {
			return fmt.Errorf("counting entries: %w", err)
		}
		if count > 0 {
			return ErrAPIIdentifierImmutable
		}

		other, err := s.repository.GetByAPIIdentifier(ctx, contentType.APIIdentifier)
		if err != nil && !errors.Is(err, ErrContentTypeNotFound) {
			return fmt.Errorf("checking existing content type: %w", err)
		}
		if other.ID != "" && other.ID != contentType.ID {
			return ErrContentTypeDuplicated
		}
	}

	err = s.repository.Update(ctx, contentType)
	if err != nil {
		slog.Error("updating content type", slog.String("error", err.Error()))
		return fmt.Errorf("updating content type: %w", err)
	}

	slog.Info("content type updated successfully", slog.String("id", contentType.ID.String()))

	return nil
}

func (s *SimpleContentTypeService) AddField(ctx context.Context, id domain.ID, field domain.Field) (domain.ContentType, error) {
	contentType, err := s.GetContentType(ctx, id)
	if err != nil {
		return domain.ContentType{}, err
	}

	if err := contentType.AddField(field); err != nil {
		return domain.ContentType{}, err
	}

	err = s.repository.Update(ctx, contentType)
	if err != nil {
		slog.Error("adding field", slog.String("error", err.Error()))
		return domain.ContentType{}, fmt.Errorf("adding field: %w", err)
	}

	slog.Info("field added",
		slog.String("content_type_id", id.String()),
		slog.String("identifier", field.Identifier))

	return contentType, nil
}

func (s *SimpleContentTypeService) RemoveField(ctx context.Context, id domain.ID, identifier string) (domain.ContentType, error) {
	contentType, err := s.GetContentType(ctx, id)
	if err != nil {
		return domain.ContentType{}, err
	}

	if err := contentType.RemoveField(identifier); err != nil {
		return domain.ContentType{}, err
	}

	err = s.repository.Update(ctx, contentType)
	if err != nil {
		slog.Error("removing field", slog.String("error", err.Error()))
		return domain.ContentType{}, fmt.Errorf("removing field: %w", err)
	}

	slog.Info("field removed",
		slog.String("content_type_id", id.String()),
		slog.String("identifier", identifier))

	return contentType, nil
}

func (s *SimpleContentTypeService) DeleteContentType(ctx context.Context, id domain.ID) error {
	if _, err := s.GetContentType(ctx, id); err != nil {
		return err
	}

	count, err := s.entryRepository.CountByContentType(ctx, id)
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}
	if count > 0 {
		slog.Warn("refusing to delete content type with entries",
			slog.String("id", id.String()),
			slog.Int64("entry_count", count))
		return ErrContentTypeHasEntries
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting content type", slog.String("error", err.Error()))
		return fmt.Errorf("deleting content type: %w", err)
	}

	slog.Info("content type deleted", slog.String("id", id.String()))

	return nil
}
