package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LawTracker/internal/domain"
)

func openMemory(t *testing.T) *SQLRepository {
	t.Helper()

	repo, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	repo.now = func() time.Time { return time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC) }
	return repo
}

func sampleRecord() domain.Record {
	return domain.Record{
		Identifier:      "32008R1272",
		Title:           "Regulation on classification, labelling, packaging of chemicals",
		Date:            "2008-12-16",
		InstrumentType:  domain.InstrumentRegulation,
		CategoryNumber:  23,
		Relevance:       domain.RelevanceHigh,
		MatchKind:       domain.MatchDirect,
		MatchedKeywords: []string{"chemicals", "classification, labelling, packaging"},
		Score:           15,
		Tier:            domain.TierHigh,
		Breakdown:       domain.ScoreBreakdown{CategoryMatch: 10, Relevance: 3, InstrumentType: 2},
		EurlexURL:       "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32008R1272",
		SourceHint:      "eurlex-sparql",
	}
}

func save(t *testing.T, repo *SQLRepository, rec domain.Record) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, repo.SaveLegislation(ctx, rec))
	require.NoError(t, repo.SaveAnalysis(ctx, rec))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}

func TestSaveAndGet(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	want := sampleRecord()
	save(t, repo, want)

	got, err := repo.Get(context.Background(), want.Identifier)
	require.NoError(t, err)

	assert.Equal(t, want.Identifier, got.Identifier)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Date, got.Date)
	assert.Equal(t, want.InstrumentType, got.InstrumentType)
	assert.Equal(t, 23, got.CategoryNumber)
	assert.Equal(t, domain.MatchDirect, got.MatchKind)
	assert.Equal(t, want.MatchedKeywords, got.MatchedKeywords)
	assert.Equal(t, want.Breakdown, got.Breakdown)
	assert.Equal(t, 15, got.Score)
	assert.Equal(t, domain.TierHigh, got.Tier)
	assert.Equal(t, want.EurlexURL, got.EurlexURL)
	assert.False(t, got.Pinned)
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	_, err := openMemory(t).Get(context.Background(), "32099R0001")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUnmatchedRecordRoundTrip(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	rec := domain.Record{
		Identifier:     "32024D0001",
		Title:          "Commission notice",
		InstrumentType: domain.InstrumentDecision,
		MatchKind:      domain.MatchNone,
		Score:          1,
		Tier:           domain.TierLow,
		Breakdown:      domain.ScoreBreakdown{InstrumentType: 1},
	}
	save(t, repo, rec)

	got, err := repo.Get(context.Background(), rec.Identifier)
	require.NoError(t, err)
	assert.False(t, got.HasCategory())
	assert.Equal(t, domain.MatchNone, got.MatchKind)
	assert.Empty(t, got.MatchedKeywords)
	assert.Empty(t, got.Date)
}

func TestPinnedRecordKeepsMatchKind(t *testing.T) {
	t.Parallel()

	repo := openMemory(t)
	rec := domain.Record{
		Identifier:      "32009L0048",
		Title:           "Directive on the safety of toys",
		InstrumentType:  domain.InstrumentDirective,
		CategoryNumber:  17,
		MatchKind:       domain.MatchKeyword,
		MatchedKeywords: []string{"toys"},
		Pinned:          true,
		Score:           14,
		Tier:            domain.TierHigh,
	}
	save(t, repo, rec)

	got, err := repo.Get(context.Background(), rec.Identifier)
	require.NoError(t, err)
	assert.True(t, got.Pinned)
	assert.Equal(t, domain.MatchKeyword, got.MatchKind)
}

func TestUpsertAndKnown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openMemory(t)
	rec := sampleRecord()
	save(t, repo, rec)

	known, err := repo.Known(ctx, []string{rec.Identifier, "32099R0001"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{rec.Identifier: true}, known)

	empty, err := repo.Known(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	rec.Title = "Updated title"
	rec.Date = ""
	rec.Score = 20
	rec.Tier = domain.TierCritical
	save(t, repo, rec)

	got, err := repo.Get(ctx, rec.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, "2008-12-16", got.Date, "a missing date keeps the stored one")
	assert.Equal(t, 20, got.Score)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListOrdersByScore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openMemory(t)
	for _, r := range []struct {
		id    string
		score int
	}{{"32024R0001", 5}, {"32024R0002", 19}, {"32024R0003", 12}} {
		save(t, repo, domain.Record{Identifier: r.id, Title: r.id, InstrumentType: domain.InstrumentRegulation, MatchKind: domain.MatchNone, Score: r.score})
	}
	require.NoError(t, repo.SaveLegislation(ctx, domain.Record{Identifier: "32024R0004", Title: "no analysis", MatchKind: domain.MatchNone}))

	got, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "32024R0002", got[0].Identifier)
	assert.Equal(t, "32024R0003", got[1].Identifier)
	assert.Equal(t, "32024R0001", got[2].Identifier)
}

func TestLogRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openMemory(t)

	errs := make([]string, 15)
	for i := range errs {
		errs[i] = "failure"
	}
	started := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.LogRun(ctx, domain.RunReport{
		ID: "run-1", Source: "eurlex", Found: 3, Inserted: 2, Updated: 1,
		Errors: errs, StartedAt: started, CompletedAt: started.Add(time.Minute),
	}))
	require.NoError(t, repo.LogRun(ctx, domain.RunReport{ID: "run-2", Source: "baseline", StartedAt: started, CompletedAt: started}))

	var status, storedErrs, completed string
	var found, inserted int
	row := repo.db.QueryRowContext(ctx, `SELECT status, errors, completed_at, items_found, items_new FROM scraper_log WHERE id = ?`, "run-1")
	require.NoError(t, row.Scan(&status, &storedErrs, &completed, &found, &inserted))
	assert.Equal(t, "completed_with_errors", status)
	assert.Equal(t, maxLoggedErrors, strings.Count(storedErrs, "failure"))
	assert.Equal(t, "2024-07-01T10:01:00Z", completed)
	assert.Equal(t, 3, found)
	assert.Equal(t, 2, inserted)

	row = repo.db.QueryRowContext(ctx, `SELECT status, errors FROM scraper_log WHERE id = ?`, "run-2")
	require.NoError(t, row.Scan(&status, &storedErrs))
	assert.Equal(t, "completed", status)
	assert.Equal(t, "[]", storedErrs)
}

func TestStoredMatchKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.MatchDirect, storedMatchKind(true, false, 0))
	assert.Equal(t, domain.MatchKeyword, storedMatchKind(false, true, 1))
	assert.Equal(t, domain.MatchDirect, storedMatchKind(false, false, 3))
	assert.Equal(t, domain.MatchNone, storedMatchKind(false, false, 0))
}

func TestPlaceholderFormatPerDriver(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		DriverSQLite:   "SELECT celex_number FROM legislation WHERE celex_number = ?",
		DriverPostgres: "SELECT celex_number FROM legislation WHERE celex_number = $1",
	}
	for driver, want := range cases {
		repo := NewSQLRepository(nil, driver)
		query, _, err := repo.sb.Select("celex_number").From("legislation").Where(sq.Eq{"celex_number": "32024R0001"}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, want, query, driver)
	}
}
