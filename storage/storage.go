package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Archive stores the raw text of scraped rulings alongside their database
// rows, so the original payload survives re-parsing and schema changes.
type Archive interface {
	// Put stores a ruling's raw text and returns the storage path
	Put(ctx context.Context, source, baseName string, data io.Reader) (string, error)

	// Get retrieves a ruling's raw text by storage path
	Get(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes an archived ruling by storage path
	Delete(ctx context.Context, storagePath string) error
}

// ArchiveType represents the storage backend type
type ArchiveType string

const (
	ArchiveTypeLocal ArchiveType = "local"
	ArchiveTypeS3    ArchiveType = "s3"
)

// ArchiveConfig holds configuration for the ruling archive
type ArchiveConfig struct {
	Type         ArchiveType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewArchive creates an archive instance based on configuration
func NewArchive(cfg ArchiveConfig) (Archive, error) {
	switch cfg.Type {
	case ArchiveTypeLocal:
		return NewLocalArchive(cfg.LocalPath)
	case ArchiveTypeS3:
		return NewS3Archive(cfg)
	default:
		return nil, fmt.Errorf("unknown archive type: %s", cfg.Type)
	}
}

// NewArchiveFromEnv creates an archive instance from environment variables
func NewArchiveFromEnv() (Archive, error) {
	archiveType := os.Getenv("ARCHIVE_TYPE")
	if archiveType == "" {
		archiveType = "local" // Default to local for development
	}

	cfg := ArchiveConfig{
		Type: ArchiveType(archiveType),
	}

	switch ArchiveType(archiveType) {
	case ArchiveTypeLocal:
		localPath := os.Getenv("ARCHIVE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/rulings" // Default local archive path
		}
		cfg.LocalPath = localPath
		return NewLocalArchive(cfg.LocalPath)

	case ArchiveTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "eu-west-1" // Default region
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 archive")
		}

		return NewS3Archive(cfg)

	default:
		return nil, fmt.Errorf("unknown archive type: %s", archiveType)
	}
}

// generateStoragePath generates a unique storage path for a ruling
func generateStoragePath(source, baseName string) string {
	// Sanitize the base name taken from the source listing
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")
	if baseName == "" {
		baseName = "ruling"
	}

	// A fresh id keeps re-scrapes of the same ruling from colliding
	id := uuid.New().String()
	return fmt.Sprintf("%s/%s/%s_%s.txt", source, id[:2], id, baseName)
}
