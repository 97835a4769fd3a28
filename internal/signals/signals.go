// Package signals loads best-effort external inputs for scoring:
// consultation windows and regulatory status per identifier.
package signals

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"LawTracker/internal/domain"
)

// Entry is one line of the signals file. Every field is optional; values
// that cannot be interpreted are treated as absent.
type Entry struct {
	Identifier         string `yaml:"identifier"`
	ConsultationCloses string `yaml:"consultationCloses"`
	DaysRemaining      string `yaml:"daysRemaining"`
	Status             string `yaml:"status"`
}

type file struct {
	Signals []Entry `yaml:"signals"`
}

// Set resolves signals by identifier.
type Set struct {
	entries map[string]Entry
	now     func() time.Time
}

// NewSet indexes entries; later entries for the same identifier replace
// earlier ones.
func NewSet(entries []Entry) *Set {
	set := &Set{entries: make(map[string]Entry, len(entries)), now: time.Now}
	for _, entry := range entries {
		key := strings.ToUpper(strings.TrimSpace(entry.Identifier))
		if key == "" {
			continue
		}
		set.entries[key] = entry
	}
	return set
}

// Load reads a YAML signals file. An empty path yields an empty set.
func Load(path string) (*Set, error) {
	if path == "" {
		return NewSet(nil), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signals %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes signals from YAML bytes.
func Parse(raw []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse signals: %w", err)
	}
	return NewSet(f.Signals), nil
}

// Len is the number of identifiers with signals.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// For returns the signals known for identifier. Unknown identifiers get
// the zero Signals.
func (s *Set) For(identifier string) domain.Signals {
	if s == nil {
		return domain.Signals{}
	}
	entry, ok := s.entries[strings.ToUpper(strings.TrimSpace(identifier))]
	if !ok {
		return domain.Signals{}
	}
	return entry.Signals(s.now())
}

// Signals interprets the entry relative to now. An explicit day count wins
// over a close date.
func (e Entry) Signals(now time.Time) domain.Signals {
	out := domain.Signals{Status: ParseStatus(e.Status)}
	if days, ok := ParseDaysRemaining(e.DaysRemaining); ok {
		out.ConsultationDaysRemaining = &days
	} else if days, ok := DaysUntil(e.ConsultationCloses, now); ok {
		out.ConsultationDaysRemaining = &days
	}
	return out
}

// ParseDaysRemaining accepts a base-10 integer.
func ParseDaysRemaining(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return days, true
}

// DaysUntil counts whole calendar days from now to a YYYY-MM-DD date.
func DaysUntil(date string, now time.Time) (int, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0, false
	}
	closes, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(closes.Sub(today).Hours() / 24), true
}

// ParseStatus maps known status strings; anything else is unknown.
func ParseStatus(raw string) domain.RegulatoryStatus {
	switch domain.RegulatoryStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.StatusProposedNew:
		return domain.StatusProposedNew
	case domain.StatusProposedReplacement:
		return domain.StatusProposedReplacement
	case domain.StatusPublished:
		return domain.StatusPublished
	default:
		return domain.StatusUnknown
	}
}
