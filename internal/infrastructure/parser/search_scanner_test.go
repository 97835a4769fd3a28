package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"LawTracker/internal/scanner"
)

func TestBuildPageURL(t *testing.T) {
	t.Parallel()

	base := "https://eur-lex.europa.eu/search.html?type=advanced&qid=1"
	u, err := buildPageURL(base, 3)
	if err != nil {
		t.Fatalf("buildPageURL returned error: %v", err)
	}

	parsed, err := url.Parse(u)
	if err != nil {
		t.Fatalf("parse result: %v", err)
	}

	if parsed.Scheme != "https" || parsed.Host != "eur-lex.europa.eu" {
		t.Fatalf("unexpected host: %s", parsed.Host)
	}

	q := parsed.Query()
	if q.Get("page") != "3" {
		t.Fatalf("expected page=3, got %s", q.Get("page"))
	}
	if q.Get("type") != "advanced" {
		t.Fatalf("existing query lost: %s", parsed.RawQuery)
	}
}

func TestParseResult(t *testing.T) {
	t.Parallel()

	html := `
	<div class="SearchResult">
	  <h2><a class="title" href="./legal-content/AUTO/?uri=CELEX:32024R1781">Regulation (EU) 2024/1781 on ecodesign requirements</a></h2>
	  <dl>
	    <dt>CELEX number: </dt><dd>32024R1781</dd>
	    <dt>Date of document: </dt><dd>13/06/2024; Date of signature</dd>
	  </dl>
	</div>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	rec, published, ok := parseResult(doc.Find(".SearchResult").First(), "eurlex-search")
	if !ok {
		t.Fatal("parseResult rejected a valid result")
	}

	if rec.Identifier != "32024R1781" {
		t.Fatalf("unexpected id: %s", rec.Identifier)
	}
	if rec.Title != "Regulation (EU) 2024/1781 on ecodesign requirements" {
		t.Fatalf("unexpected title: %s", rec.Title)
	}
	if rec.Date != "2024-06-13" {
		t.Fatalf("unexpected date: %s", rec.Date)
	}
	if rec.EurlexURL != "https://eur-lex.europa.eu/legal-content/AUTO/?uri=CELEX:32024R1781" {
		t.Fatalf("unexpected link: %s", rec.EurlexURL)
	}
	if rec.SourceHint != "eurlex-search" {
		t.Fatalf("unexpected source: %s", rec.SourceHint)
	}

	wantDate := time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)
	if !published.Equal(wantDate) {
		t.Fatalf("unexpected published date: %v", published)
	}
}

func TestParseResultCELEXFromLink(t *testing.T) {
	t.Parallel()

	html := `<div class="SearchResult"><h2><a href="https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX%3A32024L0001">Directive</a></h2></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	rec, published, ok := parseResult(doc.Find(".SearchResult").First(), "s")
	if !ok || rec.Identifier != "32024L0001" {
		t.Fatalf("unexpected result ok=%v rec=%+v", ok, rec)
	}
	if !published.IsZero() || rec.Date != "" {
		t.Fatalf("date should be unknown: %v %q", published, rec.Date)
	}
}

const searchPage = `
<html><body>
  <div class="SearchResult">
    <h2><a class="title" href="/legal-content/EN/TXT/?uri=CELEX:32024R0010">Fresh regulation</a></h2>
    <dl><dt>CELEX number:</dt><dd>32024R0010</dd><dt>Date of document:</dt><dd>20/06/2024</dd></dl>
  </div>
  <div class="SearchResult">
    <h2><a class="title" href="/legal-content/EN/TXT/?uri=CELEX:32024R0010">Same act again</a></h2>
    <dl><dt>CELEX number:</dt><dd>32024R0010</dd><dt>Date of document:</dt><dd>20/06/2024</dd></dl>
  </div>
  <div class="SearchResult">
    <h2><a class="title" href="/legal-content/EN/TXT/?uri=CELEX:32024L0011">Fresh directive</a></h2>
    <dl><dt>CELEX number:</dt><dd>32024L0011</dd><dt>Date of document:</dt><dd>18/06/2024</dd></dl>
  </div>
  <div class="SearchResult">
    <h2><a class="title" href="/legal-content/EN/TXT/?uri=CELEX:32023R0900">Old regulation</a></h2>
    <dl><dt>CELEX number:</dt><dd>32023R0900</dd><dt>Date of document:</dt><dd>01/02/2023</dd></dl>
  </div>
</body></html>`

func TestSearchScannerScan(t *testing.T) {
	t.Parallel()

	pages := make(chan string, 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages <- r.URL.Query().Get("page")
		_, _ = w.Write([]byte(searchPage))
	}))
	defer server.Close()

	sc := NewSearchScanner(server.Client(), "test-agent", nil)
	req := scanner.Request{
		Since:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		SourceName: "eurlex-search",
		URL:        server.URL + "/search.html",
		Options:    map[string]string{"maxPages": "5"},
	}

	records, err := sc.Scan(context.Background(), req)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Identifier != "32024R0010" || records[0].Title != "Fresh regulation" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Identifier != "32024L0011" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}

	close(pages)
	var requested []string
	for p := range pages {
		requested = append(requested, p)
	}
	if len(requested) != 1 || requested[0] != "1" {
		t.Fatalf("scan should stop after the page reaching past since, requested %v", requested)
	}
}

func TestSearchScannerLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchPage))
	}))
	defer server.Close()

	sc := NewSearchScanner(server.Client(), "", nil)
	records, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL, Limit: 1})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestSearchScannerRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewSearchScanner(nil, "", nil).Scan(context.Background(), scanner.Request{}); err == nil {
		t.Fatal("expected error without url")
	}
}
