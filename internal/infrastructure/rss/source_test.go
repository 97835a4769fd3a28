package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"LawTracker/internal/scanner"
)

const feedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>EUR-Lex legislation</title>
    <link>https://eur-lex.europa.eu</link>
    <item>
      <title>  Commission Implementing Regulation (EU) 2024/2001 on food additives </title>
      <link>https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32024R2001</link>
      <pubDate>Tue, 16 Jul 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Directive with encoded link</title>
      <link>https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX%3A32024L0005</link>
      <pubDate>Mon, 15 Jul 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Press release without CELEX</title>
      <link>https://eur-lex.europa.eu/news/latest.html</link>
      <pubDate>Mon, 15 Jul 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>CELEX only in guid</title>
      <link>https://eur-lex.europa.eu/eli/dec/2024/3/oj</link>
      <guid>https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32024D0003</guid>
      <pubDate>Sun, 14 Jul 2024 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Too old</title>
      <link>https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32023R0100</link>
      <pubDate>Mon, 01 Jan 2024 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedBody))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedScannerScan(t *testing.T) {
	t.Parallel()

	server := feedServer(t)
	sc := NewFeedScanner(server.Client(), "test-agent", nil)

	req := scanner.Request{
		Since:      time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		SourceName: "eurlex-rss",
		URL:        server.URL,
	}
	records, err := sc.Scan(context.Background(), req)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}

	wantIDs := []string{"32024R2001", "32024L0005", "32024D0003"}
	for i, want := range wantIDs {
		if records[i].Identifier != want {
			t.Fatalf("record %d: got %s, want %s", i, records[i].Identifier, want)
		}
		if records[i].SourceHint != "eurlex-rss" {
			t.Fatalf("record %d: unexpected source %s", i, records[i].SourceHint)
		}
	}
	if records[0].Date != "2024-07-16" {
		t.Fatalf("unexpected date: %s", records[0].Date)
	}
	if records[0].Title != "Commission Implementing Regulation (EU) 2024/2001 on food additives" {
		t.Fatalf("unexpected title: %q", records[0].Title)
	}
}

func TestFeedScannerMaxItems(t *testing.T) {
	t.Parallel()

	server := feedServer(t)
	sc := NewFeedScanner(server.Client(), "", nil)

	records, err := sc.Scan(context.Background(), scanner.Request{
		URL:     server.URL,
		Options: map[string]string{"maxItems": "2"},
	})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestFeedScannerErrors(t *testing.T) {
	t.Parallel()

	sc := NewFeedScanner(nil, "", nil)
	if _, err := sc.Scan(context.Background(), scanner.Request{SourceName: "empty"}); err == nil {
		t.Fatal("expected error without url")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sc = NewFeedScanner(server.Client(), "", nil)
	if _, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL}); err == nil {
		t.Fatal("expected error on bad status")
	}
}
