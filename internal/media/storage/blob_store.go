package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrBlobNotFound   = errors.New("blob not found")
	ErrInvalidBlobKey = errors.New("invalid blob key")
)

// BlobStore holds the raw bytes of uploaded assets, addressed by an opaque
// key chosen by the caller.
type BlobStore interface {
	Put(ctx context.Context, key string, reader io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

func NewFilesystemBlobStore(root string) (*FilesystemBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob root: %w", err)
	}

	return &FilesystemBlobStore{root: root}, nil
}

var _ BlobStore = (*FilesystemBlobStore)(nil)

// FilesystemBlobStore keeps blobs as flat files under a root directory.
type FilesystemBlobStore struct {
	root string
}

func (s *FilesystemBlobStore) Put(_ context.Context, key string, reader io.Reader) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("creating blob file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("writing blob: %w", err)
	}

	return written, nil
}

func (s *FilesystemBlobStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening blob: %w", err)
	}

	return file, nil
}

func (s *FilesystemBlobStore) Remove(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrBlobNotFound
	}
	if err != nil {
		return fmt.Errorf("removing blob: %w", err)
	}

	return nil
}

// path rejects keys that would escape the root directory.
func (s *FilesystemBlobStore) path(key string) (string, error) {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "\\") || strings.Contains(key, "..") {
		return "", ErrInvalidBlobKey
	}

	return filepath.Join(s.root, key), nil
}
