package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"LawTracker/internal/classify"
	"LawTracker/internal/domain"
	"LawTracker/internal/scanner"
)

const (
	eurlexBaseURL   = "https://eur-lex.europa.eu"
	defaultMaxPages = 1
	searchDate      = "02/01/2006"
)

// SearchScanner crawls EUR-Lex search result pages, newest first.
type SearchScanner struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ scanner.Scanner = (*SearchScanner)(nil)

// NewSearchScanner wires an HTTP client; nil picks a 20s timeout.
func NewSearchScanner(client *http.Client, userAgent string, logger *slog.Logger) *SearchScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &SearchScanner{client: client, userAgent: userAgent, logger: logger}
}

// Name identifies the strategy inside the registry.
func (s *SearchScanner) Name() string {
	return "search"
}

// Scan walks result pages until a page is empty, a result predates
// req.Since, or the maxPages option is reached.
func (s *SearchScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Record, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("no search url for source %s", req.SourceName)
	}

	maxPages := defaultMaxPages
	if v, err := strconv.Atoi(req.Options["maxPages"]); err == nil && v > 0 {
		maxPages = v
	}

	results := make([]domain.Record, 0)
	seen := map[string]struct{}{}

	for page := 1; page <= maxPages; page++ {
		pageURL, err := buildPageURL(req.URL, page)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", req.SourceName, err)
		}

		doc, err := s.fetchDocument(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("source %s page %d: %w", req.SourceName, page, err)
		}

		pageRecords, shouldContinue := extractResults(doc, req.Since, req.SourceName)
		for _, rec := range pageRecords {
			if _, ok := seen[rec.Identifier]; ok {
				continue
			}
			seen[rec.Identifier] = struct{}{}
			results = append(results, rec)
			if req.Limit > 0 && len(results) >= req.Limit {
				return results, nil
			}
		}

		s.debug("search page parsed", "source", req.SourceName, "page", page, "records", len(pageRecords))
		if !shouldContinue {
			break
		}
	}

	return results, nil
}

func (s *SearchScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eur-lex returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractResults reports false when the page was empty or the listing has
// moved past the requested window.
func extractResults(doc *goquery.Document, since time.Time, source string) ([]domain.Record, bool) {
	var (
		collected    []domain.Record
		continueScan = true
		processed    int
	)

	doc.Find(".SearchResult").EachWithBreak(func(i int, result *goquery.Selection) bool {
		processed++

		rec, published, ok := parseResult(result, source)
		if !ok {
			return true
		}

		if !since.IsZero() && !published.IsZero() && published.Before(since) {
			continueScan = false
			return false
		}

		collected = append(collected, rec)
		return true
	})

	if processed == 0 {
		continueScan = false
	}

	return collected, continueScan
}

func parseResult(result *goquery.Selection, source string) (domain.Record, time.Time, bool) {
	link := result.Find("a.title").First()
	if link.Length() == 0 {
		link = result.Find("h2 a").First()
	}
	title := strings.TrimSpace(link.Text())
	href, _ := link.Attr("href")
	href = absoluteLink(href)

	var celex, dateText string
	result.Find("dt").Each(func(i int, dt *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(dt.Text()))
		value := strings.TrimSpace(dt.NextFiltered("dd").Text())
		switch {
		case strings.HasPrefix(label, "celex number"):
			celex = value
		case strings.HasPrefix(label, "date of document"):
			dateText = value
		}
	})
	if celex == "" {
		celex = classify.CELEXFromLink(href)
	}
	if celex == "" {
		return domain.Record{}, time.Time{}, false
	}

	var published time.Time
	date := ""
	if parsed, err := time.Parse(searchDate, firstField(dateText)); err == nil {
		published = parsed
		date = parsed.Format("2006-01-02")
	}

	return domain.Record{
		Identifier: celex,
		Title:      title,
		Date:       date,
		EurlexURL:  href,
		SourceHint: source,
	}, published, true
}

func firstField(value string) string {
	fields := strings.FieldsFunc(value, func(r rune) bool { return r == ';' || r == ' ' })
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func absoluteLink(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	href = strings.TrimPrefix(href, ".")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return eurlexBaseURL + href
}

func buildPageURL(base string, page int) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid search url %s: %w", base, err)
	}

	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (s *SearchScanner) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
