package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"atlas-cms/internal/media/domain"
	"atlas-cms/internal/media/storage"
)

func NewAssetService(
	repository AssetRepository,
	blobs storage.BlobStore,
) *SimpleAssetService {
	return &SimpleAssetService{
		repository: repository,
		blobs:      blobs,
	}
}

var _ AssetService = &SimpleAssetService{}

type SimpleAssetService struct {
	repository AssetRepository
	blobs      storage.BlobStore
}

func (s *SimpleAssetService) Upload(ctx context.Context, cmd UploadCommand) (domain.Asset, error) {
	asset, err := domain.NewAssetBuilder().
		WithFileName(cmd.FileName).
		WithMimeType(cmd.MimeType).
		WithUploadedBy(cmd.UploadedBy).
		Build()
	if err != nil {
		return domain.Asset{}, err
	}

	size, err := s.blobs.Put(ctx, asset.StorageKey, cmd.Content)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("storing blob: %w", err)
	}
	asset.Size = size

	if err := s.repository.Create(ctx, asset); err != nil {
		// Keep metadata and bytes consistent when the insert fails.
		if removeErr := s.blobs.Remove(ctx, asset.StorageKey); removeErr != nil {
			slog.Warn("orphaned blob after failed insert",
				slog.String("storage_key", asset.StorageKey),
				slog.String("error", removeErr.Error()),
			)
		}
		return domain.Asset{}, fmt.Errorf("creating asset: %w", err)
	}

	return asset, nil
}

func (s *SimpleAssetService) GetAsset(ctx context.Context, id domain.ID) (domain.Asset, error) {
	asset, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("getting asset: %w", err)
	}

	return asset, nil
}

func (s *SimpleAssetService) OpenAsset(ctx context.Context, id domain.ID) (domain.Asset, io.ReadCloser, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return domain.Asset{}, nil, err
	}

	reader, err := s.blobs.Open(ctx, asset.StorageKey)
	if err != nil {
		return domain.Asset{}, nil, fmt.Errorf("opening blob: %w", err)
	}

	return asset, reader, nil
}

func (s *SimpleAssetService) ListAssets(ctx context.Context, pagination Pagination) ([]domain.Asset, int64, error) {
	assets, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing assets: %w", err)
	}

	return assets, total, nil
}

func (s *SimpleAssetService) DeleteAsset(ctx context.Context, id domain.ID) error {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, asset.ID); err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	if err := s.blobs.Remove(ctx, asset.StorageKey); err != nil {
		slog.Warn("orphaned blob after delete",
			slog.String("storage_key", asset.StorageKey),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
