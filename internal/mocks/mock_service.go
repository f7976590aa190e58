package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"impactcast/internal/models"
)

// MockService serves canned NEO catalog payloads so local runs and tests
// can exercise the lookup path without calling NASA. It satisfies the
// pipeline's catalog resolver interface.
type MockService struct {
	mocksDir string
}

// NewMockService creates a new mock service rooted at mocksDir
func NewMockService(mocksDir string) *MockService {
	return &MockService{
		mocksDir: filepath.Join(mocksDir, "data"),
	}
}

// LookupNEO loads the mock NEO payload, substituting the requested id so
// callers see a coherent record.
func (m *MockService) LookupNEO(ctx context.Context, id string) (*models.NEOLookupResponse, error) {
	neo, err := m.loadMockNEO()
	if err != nil {
		return nil, err
	}
	neo.ID = id
	neo.NeoReferenceID = id
	return neo, nil
}

func (m *MockService) loadMockNEO() (*models.NEOLookupResponse, error) {
	filePath := filepath.Join(m.mocksDir, "neo_lookup.json")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock NEO payload: %w", err)
	}

	var neo models.NEOLookupResponse
	if err := json.Unmarshal(content, &neo); err != nil {
		return nil, fmt.Errorf("failed to parse mock NEO payload: %w", err)
	}

	return &neo, nil
}
