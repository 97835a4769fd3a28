// Package storage persists classified legislation, score breakdowns and
// run history through database/sql.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "modernc.org/sqlite"

	"LawTracker/internal/domain"
	"LawTracker/internal/ports"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	maxLoggedErrors = 10
)

// ErrNotFound is returned by Get for unknown identifiers.
var ErrNotFound = errors.New("legislation not found")

// SQLRepository stores records in SQLite or Postgres.
type SQLRepository struct {
	db     *sql.DB
	driver string
	sb     sq.StatementBuilderType
	now    func() time.Time
}

var _ ports.LegislationRepository = (*SQLRepository)(nil)

// Open connects and creates tables if needed. ":memory:" with the sqlite
// driver keeps a single connection so every query sees the same database.
func Open(ctx context.Context, driver, dsn string) (*SQLRepository, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := NewSQLRepository(db, driver)
	if err := repo.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return repo, nil
}

// NewSQLRepository wraps an existing handle without migrating.
func NewSQLRepository(db *sql.DB, driver string) *SQLRepository {
	var format sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		format = sq.Dollar
	}
	return &SQLRepository{
		db:     db,
		driver: driver,
		sb:     sq.StatementBuilder.PlaceholderFormat(format),
		now:    time.Now,
	}
}

// Close releases the database handle.
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Known returns the subset of identifiers already stored.
func (r *SQLRepository) Known(ctx context.Context, identifiers []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(identifiers) == 0 {
		return result, nil
	}

	builder := r.sb.Select("celex_number").From("legislation")
	if r.driver == DriverPostgres {
		builder = builder.Where("celex_number = ANY(?)", pq.StringArray(identifiers))
	} else {
		builder = builder.Where(sq.Eq{"celex_number": identifiers})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build known query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query known: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return result, nil
}

// SaveLegislation upserts the record's classification.
func (r *SQLRepository) SaveLegislation(ctx context.Context, rec domain.Record) error {
	keywords := rec.MatchedKeywords
	if keywords == nil {
		keywords = []string{}
	}
	encoded, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	var category any
	if rec.HasCategory() {
		category = rec.CategoryNumber
	}

	query, args, err := r.sb.Insert("legislation").
		Columns("celex_number", "title", "legislation_type", "category_number",
			"is_direct_annex2_match", "is_keyword_match", "is_pinned", "matched_keywords",
			"date_published", "eurlex_url", "source", "status", "date_scraped").
		Values(rec.Identifier, rec.Title, string(rec.InstrumentType), category,
			rec.Pinned || rec.MatchKind == domain.MatchDirect, rec.MatchKind == domain.MatchKeyword,
			rec.Pinned, string(encoded), nullable(rec.Date), nullable(rec.EurlexURL),
			nullable(rec.SourceHint), "active", r.timestamp()).
		Suffix(`ON CONFLICT (celex_number) DO UPDATE SET
			title = excluded.title,
			legislation_type = excluded.legislation_type,
			category_number = excluded.category_number,
			is_direct_annex2_match = excluded.is_direct_annex2_match,
			is_keyword_match = excluded.is_keyword_match,
			is_pinned = excluded.is_pinned,
			matched_keywords = excluded.matched_keywords,
			date_published = COALESCE(excluded.date_published, legislation.date_published),
			eurlex_url = excluded.eurlex_url,
			date_scraped = excluded.date_scraped`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build legislation upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert legislation %s: %w", rec.Identifier, err)
	}
	return nil
}

// SaveAnalysis upserts the score breakdown for an already stored record.
func (r *SQLRepository) SaveAnalysis(ctx context.Context, rec domain.Record) error {
	b := rec.Breakdown
	query, args, err := r.sb.Insert("analysis_results").
		Columns("celex_number", "score_category_match", "score_consumer_relevance",
			"score_consultation", "score_dsc", "score_legislation_type",
			"total_score", "priority_level", "calculated_at").
		Values(rec.Identifier, b.CategoryMatch, b.Relevance, b.Consultation, b.Status,
			b.InstrumentType, rec.Score, string(rec.Tier), r.timestamp()).
		Suffix(`ON CONFLICT (celex_number) DO UPDATE SET
			score_category_match = excluded.score_category_match,
			score_consumer_relevance = excluded.score_consumer_relevance,
			score_consultation = excluded.score_consultation,
			score_dsc = excluded.score_dsc,
			score_legislation_type = excluded.score_legislation_type,
			total_score = excluded.total_score,
			priority_level = excluded.priority_level,
			calculated_at = excluded.calculated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build analysis upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert analysis %s: %w", rec.Identifier, err)
	}
	return nil
}

// LogRun appends a run summary. Only the first errors are kept.
func (r *SQLRepository) LogRun(ctx context.Context, report domain.RunReport) error {
	errs := report.Errors
	if len(errs) > maxLoggedErrors {
		errs = errs[:maxLoggedErrors]
	}
	if errs == nil {
		errs = []string{}
	}
	encoded, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("encode errors: %w", err)
	}

	status := "completed"
	if len(report.Errors) > 0 {
		status = "completed_with_errors"
	}

	query, args, err := r.sb.Insert("scraper_log").
		Columns("id", "source", "items_found", "items_new", "items_updated",
			"errors", "started_at", "completed_at", "status").
		Values(report.ID, report.Source, report.Found, report.Inserted, report.Updated,
			string(encoded), report.StartedAt.UTC().Format(time.RFC3339),
			report.CompletedAt.UTC().Format(time.RFC3339), status).
		ToSql()
	if err != nil {
		return fmt.Errorf("build run log insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run log: %w", err)
	}
	return nil
}

// Get loads a stored record with its latest analysis.
func (r *SQLRepository) Get(ctx context.Context, identifier string) (domain.Record, error) {
	records, err := r.list(ctx, sq.Eq{"l.celex_number": identifier}, 1)
	if err != nil {
		return domain.Record{}, err
	}
	if len(records) == 0 {
		return domain.Record{}, ErrNotFound
	}
	return records[0], nil
}

// List returns stored records, highest score first.
func (r *SQLRepository) List(ctx context.Context, limit int) ([]domain.Record, error) {
	return r.list(ctx, nil, limit)
}

func (r *SQLRepository) list(ctx context.Context, where sq.Sqlizer, limit int) ([]domain.Record, error) {
	builder := r.sb.Select(
		"l.celex_number", "l.title", "l.legislation_type", "l.category_number",
		"l.is_direct_annex2_match", "l.is_keyword_match", "l.is_pinned", "l.matched_keywords",
		"l.date_published", "l.eurlex_url",
		"COALESCE(a.score_category_match, 0)", "COALESCE(a.score_consumer_relevance, 0)",
		"COALESCE(a.score_consultation, 0)", "COALESCE(a.score_dsc, 0)",
		"COALESCE(a.score_legislation_type, 0)", "COALESCE(a.total_score, 0)",
		"COALESCE(a.priority_level, '')",
	).
		From("legislation l").
		LeftJoin("analysis_results a ON a.celex_number = l.celex_number").
		OrderBy("COALESCE(a.total_score, 0) DESC", "l.celex_number")
	if where != nil {
		builder = builder.Where(where)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query legislation: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var (
			rec                     domain.Record
			instrument, tier, kws   string
			category                sql.NullInt64
			direct, keyword, pinned bool
			date, link              sql.NullString
		)
		if err := rows.Scan(
			&rec.Identifier, &rec.Title, &instrument, &category,
			&direct, &keyword, &pinned, &kws,
			&date, &link,
			&rec.Breakdown.CategoryMatch, &rec.Breakdown.Relevance,
			&rec.Breakdown.Consultation, &rec.Breakdown.Status,
			&rec.Breakdown.InstrumentType, &rec.Score, &tier,
		); err != nil {
			return nil, fmt.Errorf("scan legislation: %w", err)
		}
		if err := json.Unmarshal([]byte(kws), &rec.MatchedKeywords); err != nil {
			return nil, fmt.Errorf("decode keywords %s: %w", rec.Identifier, err)
		}
		rec.InstrumentType = domain.InstrumentType(instrument)
		rec.CategoryNumber = int(category.Int64)
		rec.Pinned = pinned
		rec.MatchKind = storedMatchKind(direct && !pinned, keyword, len(rec.MatchedKeywords))
		rec.Date = date.String
		rec.EurlexURL = link.String
		rec.Tier = domain.PriorityTier(tier)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return records, nil
}

// storedMatchKind rebuilds the match kind. Pinned rows store the direct flag
// regardless of keyword evidence, so their kind comes from the hit count.
func storedMatchKind(direct, keyword bool, hits int) domain.MatchKind {
	switch {
	case direct:
		return domain.MatchDirect
	case keyword:
		return domain.MatchKeyword
	case hits >= 2:
		return domain.MatchDirect
	case hits == 1:
		return domain.MatchKeyword
	default:
		return domain.MatchNone
	}
}

func (r *SQLRepository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
