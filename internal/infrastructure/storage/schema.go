package storage

// Booleans and timestamps use portable types; timestamps are RFC 3339 text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS legislation (
		celex_number TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		legislation_type TEXT NOT NULL,
		category_number INTEGER,
		is_direct_annex2_match BOOLEAN NOT NULL DEFAULT FALSE,
		is_keyword_match BOOLEAN NOT NULL DEFAULT FALSE,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		matched_keywords TEXT NOT NULL DEFAULT '[]',
		date_published TEXT,
		eurlex_url TEXT,
		source TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		date_scraped TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_legislation_category ON legislation(category_number)`,
	`CREATE TABLE IF NOT EXISTS analysis_results (
		celex_number TEXT PRIMARY KEY REFERENCES legislation(celex_number),
		score_category_match INTEGER NOT NULL,
		score_consumer_relevance INTEGER NOT NULL,
		score_consultation INTEGER NOT NULL,
		score_dsc INTEGER NOT NULL,
		score_legislation_type INTEGER NOT NULL,
		total_score INTEGER NOT NULL,
		priority_level TEXT NOT NULL,
		calculated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_total ON analysis_results(total_score DESC)`,
	`CREATE TABLE IF NOT EXISTS scraper_log (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		items_found INTEGER NOT NULL,
		items_new INTEGER NOT NULL,
		items_updated INTEGER NOT NULL,
		errors TEXT NOT NULL DEFAULT '[]',
		started_at TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
}
