package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8980" {
					t.Errorf("Expected default Port to be '8980', got '%s'", cfg.Port)
				}
				if cfg.NASAAPIKey != "DEMO_KEY" {
					t.Errorf("Expected default NASAAPIKey to be 'DEMO_KEY', got '%s'", cfg.NASAAPIKey)
				}
				if cfg.NEOLookupURL != "https://api.nasa.gov/neo/rest/v1/neo" {
					t.Errorf("Unexpected default NEOLookupURL '%s'", cfg.NEOLookupURL)
				}
				if cfg.NEOLookupTimeout != 8*time.Second {
					t.Errorf("Expected default NEOLookupTimeout 8s, got %v", cfg.NEOLookupTimeout)
				}
				if cfg.OpenAIModel != "gpt-4.1" {
					t.Errorf("Expected default OpenAIModel to be 'gpt-4.1', got '%s'", cfg.OpenAIModel)
				}
				if cfg.LocalReportsDir != "./reports" {
					t.Errorf("Expected default LocalReportsDir to be './reports', got '%s'", cfg.LocalReportsDir)
				}
				if cfg.MockupMode != false {
					t.Errorf("Expected default MockupMode to be false, got %v", cfg.MockupMode)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default Environment to be 'development', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected default LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "explicit values",
			envVars: map[string]string{
				"PORT":               "9000",
				"NASA_API_KEY":       "real-key",
				"NEO_LOOKUP_URL":     "http://localhost:8123/neo",
				"NEO_LOOKUP_TIMEOUT": "3s",
				"MOCKUP_MODE":        "true",
				"ENVIRONMENT":        "local",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port '9000', got '%s'", cfg.Port)
				}
				if cfg.NASAAPIKey != "real-key" {
					t.Errorf("Expected NASAAPIKey 'real-key', got '%s'", cfg.NASAAPIKey)
				}
				if cfg.NEOLookupURL != "http://localhost:8123/neo" {
					t.Errorf("Unexpected NEOLookupURL '%s'", cfg.NEOLookupURL)
				}
				if cfg.NEOLookupTimeout != 3*time.Second {
					t.Errorf("Expected NEOLookupTimeout 3s, got %v", cfg.NEOLookupTimeout)
				}
				if !cfg.MockupMode {
					t.Error("Expected MockupMode to be true")
				}
				if cfg.Environment != "local" {
					t.Errorf("Expected Environment 'local', got '%s'", cfg.Environment)
				}
			},
		},
		{
			name: "invalid timeout",
			envVars: map[string]string{
				"NEO_LOOKUP_TIMEOUT": "not-a-duration",
			},
			expectError: true,
		},
	}

	envKeys := []string{
		"PORT", "NASA_API_KEY", "NEO_LOOKUP_URL", "NEO_LOOKUP_TIMEOUT",
		"NASA_NEWS_FEED_URL", "OPENAI_API_KEY", "OPENAI_MODEL",
		"GCP_PROJECT_ID", "GCS_BUCKET", "LOCAL_REPORTS_DIR", "MOCKUP_MODE",
		"ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer func() {
				for key := range tt.envVars {
					os.Unsetenv(key)
				}
			}()

			cfg, err := Load(context.Background())
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}
