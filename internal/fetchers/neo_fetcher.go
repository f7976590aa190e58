package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"impactcast/internal/models"
)

// NEOFetcher looks up near-earth objects in the NASA NeoWs catalog.
type NEOFetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewNEOFetcher creates a NEO catalog fetcher. The lookup is time-bounded
// and never retried: a failed lookup must fail the simulation request as a
// whole, so retry policy belongs to the caller.
func NewNEOFetcher(baseURL, apiKey string, timeout time.Duration) *NEOFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return &NEOFetcher{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// LookupNEO fetches one NEO record by id. Transport errors, non-200
// statuses and malformed payloads are all reported uniformly as errors; a
// well-formed payload without a diameter estimate is not an error here.
func (f *NEOFetcher) LookupNEO(ctx context.Context, id string) (*models.NEOLookupResponse, error) {
	lookupURL := fmt.Sprintf("%s/%s", f.baseURL, url.PathEscape(id))

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("api_key", f.apiKey).
		Get(lookupURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch NEO %s: %w", id, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("NEO lookup API returned status %d for %s", resp.StatusCode(), id)
	}

	var neo models.NEOLookupResponse
	if err := json.Unmarshal(resp.Body(), &neo); err != nil {
		return nil, fmt.Errorf("failed to parse NEO lookup response: %w", err)
	}

	return &neo, nil
}
