// Package merge folds records from several sources into one set keyed by
// identifier. The first copy seen wins outright.
package merge

import (
	"strings"

	"LawTracker/internal/domain"
)

// Deduper makes a streaming first-seen-wins decision per record. It is not
// safe for concurrent use and is meant to live for a single run.
type Deduper struct {
	seen       map[string]struct{}
	duplicates int
	rejected   int
}

// NewDeduper returns an empty seen-set.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Admit reports whether rec should be emitted. Records without an
// identifier are always refused.
func (d *Deduper) Admit(rec domain.Record) bool {
	key := strings.ToUpper(strings.TrimSpace(rec.Identifier))
	if key == "" {
		d.rejected++
		return false
	}
	if _, ok := d.seen[key]; ok {
		d.duplicates++
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Unique is the number of admitted identifiers.
func (d *Deduper) Unique() int { return len(d.seen) }

// Duplicates counts records shadowed by an earlier copy.
func (d *Deduper) Duplicates() int { return d.duplicates }

// Rejected counts records dropped for lacking an identifier.
func (d *Deduper) Rejected() int { return d.rejected }

// Merge concatenates sources in the order given and keeps the first record
// for each identifier, preserving first-seen order.
func Merge(sources ...[]domain.Record) []domain.Record {
	merged, _ := MergeStats(sources...)
	return merged
}

// Stats describes what a merge discarded.
type Stats struct {
	Input      int
	Unique     int
	Duplicates int
	Rejected   int
}

// MergeStats is Merge plus counters for logging.
func MergeStats(sources ...[]domain.Record) ([]domain.Record, Stats) {
	var stats Stats
	for _, source := range sources {
		stats.Input += len(source)
	}

	dedup := NewDeduper()
	merged := make([]domain.Record, 0, stats.Input)
	for _, source := range sources {
		for _, rec := range source {
			if dedup.Admit(rec) {
				merged = append(merged, rec)
			}
		}
	}

	stats.Unique = dedup.Unique()
	stats.Duplicates = dedup.Duplicates()
	stats.Rejected = dedup.Rejected()
	return merged, stats
}
