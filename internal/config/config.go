package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the impact simulation service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// NASA NeoWs configuration
	NASAAPIKey       string        `env:"NASA_API_KEY,default=DEMO_KEY"`
	NEOLookupURL     string        `env:"NEO_LOOKUP_URL,default=https://api.nasa.gov/neo/rest/v1/neo"`
	NEOLookupTimeout time.Duration `env:"NEO_LOOKUP_TIMEOUT,default=8s"`

	// News feed shown in generated reports
	NASANewsFeedURL string `env:"NASA_NEWS_FEED_URL,default=https://www.nasa.gov/rss/dyn/breaking_news.rss"`

	// OpenAI configuration (optional; reports fall back to the template
	// narrative when no key is set)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4.1"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local testing configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`
	MockupMode      bool   `env:"MOCKUP_MODE,default=false"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=json"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
