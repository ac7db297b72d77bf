package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"atlas-cms/internal/content/domain"
)

func NewEntryService(contentTypeRepository ContentTypeRepository, repository EntryRepository) *SimpleEntryService {
	return &SimpleEntryService{
		contentTypeRepository: contentTypeRepository,
		repository:            repository,
	}
}

var _ EntryService = &SimpleEntryService{}

// SimpleEntryService is the write/read gateway for entries. Every write loads
// the current field definitions, validates the full payload against them, and
// only then touches storage.
type SimpleEntryService struct {
	contentTypeRepository ContentTypeRepository
	repository            EntryRepository
}

func (s *SimpleEntryService) CreateEntry(ctx context.Context, contentTypeID domain.ID, payload domain.EntryData) (domain.Entry, error) {
	contentType, err := s.loadContentType(ctx, contentTypeID)
	if err != nil {
		return domain.Entry{}, err
	}

	data, validationErrs := contentType.Validate(payload)
	validationErrs = append(validationErrs, s.checkRelations(ctx, contentType, data)...)
	if len(validationErrs) > 0 {
		return domain.Entry{}, validationErrs
	}

	entry, err := domain.NewEntryBuilder().
		WithContentTypeID(contentType.ID).
		WithData(data).
		Build()
	if err != nil {
		return domain.Entry{}, fmt.Errorf("building entry: %w", err)
	}

	err = s.repository.Create(ctx, entry)
	if err != nil {
		slog.Error("creating entry", slog.String("error", err.Error()))
		return domain.Entry{}, fmt.Errorf("creating entry: %w", err)
	}

	slog.Info("entry created successfully",
		slog.String("id", entry.ID.String()),
		slog.String("content_type_id", contentType.ID.String()))

	return entry, nil
}

func (s *SimpleEntryService) GetEntry(ctx context.Context, contentTypeID, entryID domain.ID) (domain.Entry, error) {
	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return domain.Entry{}, ErrEntryNotFound
		}
		slog.Error("getting entry", slog.String("error", err.Error()))
		return domain.Entry{}, fmt.Errorf("getting entry: %w", err)
	}

	if entry.ContentTypeID != contentTypeID {
		return domain.Entry{}, ErrEntryNotFound
	}

	return entry, nil
}

func (s *SimpleEntryService) ListEntries(ctx context.Context, contentTypeID domain.ID, pagination Pagination) ([]domain.Entry, int, error) {
	if _, err := s.loadContentType(ctx, contentTypeID); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.repository.FindAllByContentType(ctx, contentTypeID, pagination)
	if err != nil {
		slog.Error("listing entries", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing entries: %w", err)
	}

	return entries, total, nil
}

func (s *SimpleEntryService) UpdateEntry(ctx context.Context, contentTypeID, entryID domain.ID, partial domain.EntryData) (domain.Entry, error) {
	entry, err := s.GetEntry(ctx, contentTypeID, entryID)
	if err != nil {
		return domain.Entry{}, err
	}

	contentType, err := s.loadContentType(ctx, contentTypeID)
	if err != nil {
		return domain.Entry{}, err
	}

	merged := entry.MergedData(partial)
	data, validationErrs := contentType.Validate(merged)
	validationErrs = append(validationErrs, s.checkRelations(ctx, contentType, data)...)
	if len(validationErrs) > 0 {
		return domain.Entry{}, validationErrs
	}

	entry.Data = data
	entry.UpdatedAt = time.Now()
	err = s.repository.Update(ctx, entry)
	if err != nil {
		slog.Error("updating entry", slog.String("error", err.Error()))
		return domain.Entry{}, fmt.Errorf("updating entry: %w", err)
	}

	slog.Info("entry updated successfully", slog.String("id", entry.ID.String()))

	return entry, nil
}

func (s *SimpleEntryService) DeleteEntry(ctx context.Context, contentTypeID, entryID domain.ID) error {
	entry, err := s.GetEntry(ctx, contentTypeID, entryID)
	if err != nil {
		return err
	}

	err = s.repository.Delete(ctx, entry.ID)
	if err != nil {
		slog.Error("deleting entry", slog.String("error", err.Error()))
		return fmt.Errorf("deleting entry: %w", err)
	}

	slog.Info("entry deleted", slog.String("id", entry.ID.String()))

	return nil
}

// loadContentType always reads the current definition so concurrent schema
// changes are honored by the next write.
func (s *SimpleEntryService) loadContentType(ctx context.Context, id domain.ID) (domain.ContentType, error) {
	contentType, err := s.contentTypeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrContentTypeNotFound) {
			return domain.ContentType{}, ErrContentTypeNotFound
		}
		slog.Error("getting content type", slog.String("error", err.Error()))
		return domain.ContentType{}, fmt.Errorf("getting content type: %w", err)
	}

	return contentType, nil
}

// checkRelations verifies that every relation value points at an existing
// entry of the declared target content type. Shape errors are the validator's
// job; a well-formed UUID with no target entry lands here.
func (s *SimpleEntryService) checkRelations(ctx context.Context, contentType domain.ContentType, data domain.EntryData) domain.ValidationErrors {
	var errs domain.ValidationErrors

	for _, field := range contentType.RelationFields(data) {
		targetID, ok := data[field.Identifier].(string)
		if !ok {
			continue
		}

		target, err := s.repository.GetByID(ctx, domain.ID(targetID))
		if err != nil {
			errs = append(errs, domain.RelationTargetViolation(field.Identifier))
			continue
		}

		targetAPIIdentifier, _ := field.Metadata["content_type"].(string)
		if targetAPIIdentifier == "" {
			continue
		}

		targetType, err := s.contentTypeRepository.GetByAPIIdentifier(ctx, targetAPIIdentifier)
		if err != nil || target.ContentTypeID != targetType.ID {
			errs = append(errs, domain.RelationTargetViolation(field.Identifier))
		}
	}

	return errs
}
