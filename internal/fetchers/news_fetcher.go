package fetchers

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Headline is one news item shown in the context section of a report.
type Headline struct {
	Title     string
	Link      string
	Published string
}

// NewsFetcher pulls recent NASA headlines for report context.
type NewsFetcher struct {
	parser *gofeed.Parser
	url    string
}

// NewNewsFetcher creates a news fetcher for the given RSS feed URL.
func NewNewsFetcher(feedURL string) *NewsFetcher {
	return &NewsFetcher{
		parser: gofeed.NewParser(),
		url:    feedURL,
	}
}

// FetchHeadlines returns up to limit recent headlines from the feed.
func (f *NewsFetcher) FetchHeadlines(ctx context.Context, limit int) ([]Headline, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}

	if limit <= 0 || limit > len(feed.Items) {
		limit = len(feed.Items)
	}

	headlines := make([]Headline, 0, limit)
	for _, item := range feed.Items[:limit] {
		h := Headline{
			Title: item.Title,
			Link:  item.Link,
		}
		if item.PublishedParsed != nil {
			h.Published = item.PublishedParsed.UTC().Format("2006-01-02")
		}
		headlines = append(headlines, h)
	}

	return headlines, nil
}
