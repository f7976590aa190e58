package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalStorageClient stores report artifacts on the local file system.
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient creates a local storage client rooted at baseDir.
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStorageClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage
func (l *LocalStorageClient) Close() error {
	return nil
}

// StoreFile writes a file into the report folder for the given timestamp.
func (l *LocalStorageClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, GenerateReportFolderPath(timestamp), filename)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// GetFile retrieves a file by its path relative to the base directory.
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListReports lists report index pages, newest first.
func (l *LocalStorageClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	reportsPath := filepath.Join(l.baseDir, "reports")

	var reportPaths []string

	err := filepath.Walk(reportsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if info.Name() == "index.html" {
			relPath, _ := filepath.Rel(l.baseDir, path)
			reportPaths = append(reportPaths, filepath.ToSlash(relPath))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk reports directory: %w", err)
	}

	// Folder names embed the timestamp, so lexical order is chronological
	sort.Sort(sort.Reverse(sort.StringSlice(reportPaths)))

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}

	return reportPaths, nil
}

// GetLatestReport returns the most recent report index path.
func (l *LocalStorageClient) GetLatestReport(ctx context.Context) (string, error) {
	reports, err := l.ListReports(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found")
	}
	return reports[0], nil
}
