package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalArchive implements Archive for the local filesystem
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates a new local archive instance
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{
		basePath: basePath,
	}, nil
}

// Put stores a ruling's raw text locally
func (a *LocalArchive) Put(ctx context.Context, source, baseName string, data io.Reader) (string, error) {
	storagePath := generateStoragePath(source, baseName)
	fullPath := filepath.Join(a.basePath, storagePath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write ruling text: %w", err)
	}

	return storagePath, nil
}

// Get retrieves an archived ruling from local storage
func (a *LocalArchive) Get(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	fullPath := filepath.Join(a.basePath, storagePath)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ruling not found: %s", storagePath)
		}
		return nil, fmt.Errorf("failed to open ruling: %w", err)
	}

	return file, nil
}

// Delete removes an archived ruling from local storage
func (a *LocalArchive) Delete(ctx context.Context, storagePath string) error {
	fullPath := filepath.Join(a.basePath, storagePath)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete ruling: %w", err)
	}

	return nil
}
