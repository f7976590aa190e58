package storage

import (
	"context"
	"time"
)

// StorageClient abstracts where generated report artifacts live. Simulation
// results themselves are never persisted; only report files go through
// this interface.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file inside the report folder for the given
	// report timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file by its storage-relative path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListReports lists report index pages, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)

	// GetLatestReport returns the path of the most recent report index
	GetLatestReport(ctx context.Context) (string, error)
}
