// Package rss reads the EUR-Lex legislation feed.
package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"LawTracker/internal/classify"
	"LawTracker/internal/domain"
	"LawTracker/internal/scanner"
)

const defaultMaxItems = 100

// FeedScanner implements the "rss" scanner over any RSS or Atom feed whose
// item links carry a CELEX number.
type FeedScanner struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ scanner.Scanner = (*FeedScanner)(nil)

// NewFeedScanner wires an HTTP client; nil picks a 30s timeout.
func NewFeedScanner(client *http.Client, userAgent string, logger *slog.Logger) *FeedScanner {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &FeedScanner{client: client, userAgent: userAgent, logger: logger}
}

// Name identifies the strategy inside the registry.
func (s *FeedScanner) Name() string {
	return "rss"
}

// Scan fetches the feed and keeps items with a recognisable CELEX number.
// Items older than req.Since are skipped when their date is known.
func (s *FeedScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Record, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("no feed url for source %s", req.SourceName)
	}

	feed, err := s.fetchFeed(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", req.SourceName, err)
	}

	maxItems := defaultMaxItems
	if v, err := strconv.Atoi(req.Options["maxItems"]); err == nil && v > 0 {
		maxItems = v
	}

	records := make([]domain.Record, 0, len(feed.Items))
	for i, item := range feed.Items {
		if i >= maxItems {
			break
		}
		rec, ok := convertItem(item, req.SourceName)
		if !ok {
			s.debug("feed item without celex", "source", req.SourceName, "link", item.Link)
			continue
		}
		if !req.Since.IsZero() && item.PublishedParsed != nil && item.PublishedParsed.Before(req.Since) {
			continue
		}
		records = append(records, rec)
	}

	s.debug("feed scan done", "source", req.SourceName, "items", len(feed.Items), "records", len(records))
	return records, nil
}

func (s *FeedScanner) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

func convertItem(item *gofeed.Item, source string) (domain.Record, bool) {
	celex := classify.CELEXFromLink(item.Link)
	if celex == "" {
		celex = classify.CELEXFromLink(item.GUID)
	}
	if celex == "" {
		return domain.Record{}, false
	}

	date := ""
	if item.PublishedParsed != nil {
		date = item.PublishedParsed.UTC().Format("2006-01-02")
	}

	return domain.Record{
		Identifier: celex,
		Title:      strings.TrimSpace(item.Title),
		Date:       date,
		SourceHint: source,
	}, true
}

func (s *FeedScanner) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
