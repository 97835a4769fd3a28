// Package sparql queries the Publications Office CELLAR endpoint for
// recent legislation and per-act details.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"LawTracker/internal/domain"
	"LawTracker/internal/ports"
	"LawTracker/internal/scanner"
)

const (
	// DefaultEndpoint is the public CELLAR SPARQL service.
	DefaultEndpoint  = "https://publications.europa.eu/webapi/rdf/sparql"
	defaultLimit     = 200
	defaultUserAgent = "NI-EU-Law-Tracker/1.0"
	errorBodyPreview = 500
)

var celexExpr = regexp.MustCompile(`^[0-9][0-9A-Z]{5,}$`)

// Options tune a Client. Zero values pick defaults.
type Options struct {
	HTTPClient      *http.Client
	UserAgent       string
	RequestInterval time.Duration
	Logger          *slog.Logger
}

// Client implements the "sparql" scanner and ports.DetailFetcher.
type Client struct {
	endpoint  string
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

var (
	_ scanner.Scanner     = (*Client)(nil)
	_ ports.DetailFetcher = (*Client)(nil)
)

// NewClient wires an HTTP client and a request limiter.
func NewClient(endpoint string, opts Options) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	limit := rate.Inf
	if opts.RequestInterval > 0 {
		limit = rate.Every(opts.RequestInterval)
	}
	return &Client{
		endpoint:  endpoint,
		client:    client,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
		logger:    opts.Logger,
	}
}

// Name identifies the strategy inside the registry.
func (c *Client) Name() string {
	return "sparql"
}

// Scan lists Regulations, Directives and Decisions dated on or after
// req.Since, newest first.
func (c *Client) Scan(ctx context.Context, req scanner.Request) ([]domain.Record, error) {
	endpoint := req.URL
	if endpoint == "" {
		endpoint = c.endpoint
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	bindings, err := c.query(ctx, endpoint, recentQuery(req.Since, limit))
	if err != nil {
		return nil, fmt.Errorf("query recent legislation: %w", err)
	}

	records := make([]domain.Record, 0, len(bindings))
	for _, b := range bindings {
		records = append(records, domain.Record{
			Identifier:     b.value("celex"),
			Title:          b.value("title"),
			Date:           firstN(b.value("date"), 10),
			InstrumentType: instrumentFromTypeURI(b.value("type")),
			SourceHint:     req.SourceName,
		})
	}
	c.debug("sparql scan done", "source", req.SourceName, "count", len(records))
	return records, nil
}

// FetchDetails looks up the English title and document date of one act.
func (c *Client) FetchDetails(ctx context.Context, celex string) (ports.Details, bool, error) {
	if !celexExpr.MatchString(celex) {
		return ports.Details{}, false, fmt.Errorf("invalid celex %q", celex)
	}

	bindings, err := c.query(ctx, c.endpoint, detailQuery(celex))
	if err != nil {
		return ports.Details{}, false, fmt.Errorf("query details %s: %w", celex, err)
	}
	if len(bindings) == 0 || bindings[0].value("title") == "" {
		return ports.Details{}, false, nil
	}

	return ports.Details{
		Title: bindings[0].value("title"),
		Date:  firstN(bindings[0].value("date"), 10),
	}, true, nil
}

type term struct {
	Value string `json:"value"`
}

type binding map[string]term

func (b binding) value(name string) string {
	return b[name].Value
}

type resultSet struct {
	Results struct {
		Bindings []binding `json:"bindings"`
	} `json:"results"`
}

func (c *Client) query(ctx context.Context, endpoint, query string) ([]binding, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
		return nil, fmt.Errorf("sparql returned %s: %s", resp.Status, strings.TrimSpace(string(preview)))
	}

	var rs resultSet
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return rs.Results.Bindings, nil
}

func recentQuery(since time.Time, limit int) string {
	return `PREFIX cdm: <http://publications.europa.eu/ontology/cdm#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>

SELECT DISTINCT ?work ?celex ?title ?date ?type WHERE {
    ?work cdm:work_has_resource-type ?type .
    ?work cdm:resource_legal_id_celex ?celex .
    ?work cdm:work_date_document ?date .
    ?work cdm:work_has_expression ?expr .
    ?expr cdm:expression_uses_language <http://publications.europa.eu/resource/authority/language/ENG> .
    ?expr cdm:expression_title ?title .

    FILTER (?type IN (
        <http://publications.europa.eu/resource/authority/resource-type/REG>,
        <http://publications.europa.eu/resource/authority/resource-type/DIR>,
        <http://publications.europa.eu/resource/authority/resource-type/DEC>
    ))

    FILTER (?date >= "` + since.Format("2006-01-02") + `"^^xsd:date)
}
ORDER BY DESC(?date)
LIMIT ` + strconv.Itoa(limit)
}

func detailQuery(celex string) string {
	return `PREFIX cdm: <http://publications.europa.eu/ontology/cdm#>

SELECT ?title ?date WHERE {
    ?work cdm:resource_legal_id_celex "` + celex + `" .
    ?work cdm:work_date_document ?date .
    ?expr cdm:expression_belongs_to_work ?work .
    ?expr cdm:expression_uses_language <http://publications.europa.eu/resource/authority/language/ENG> .
    ?expr cdm:expression_title ?title .
}
LIMIT 1`
}

func instrumentFromTypeURI(uri string) domain.InstrumentType {
	switch {
	case strings.Contains(uri, "REG"):
		return domain.InstrumentRegulation
	case strings.Contains(uri, "DIR"):
		return domain.InstrumentDirective
	case strings.Contains(uri, "DEC"):
		return domain.InstrumentDecision
	case uri == "":
		return ""
	default:
		return domain.InstrumentOther
	}
}

func firstN(value string, n int) string {
	if len(value) <= n {
		return value
	}
	return value[:n]
}

func (c *Client) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
