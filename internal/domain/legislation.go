package domain

import "time"

// InstrumentType is the structural kind of a legal act.
type InstrumentType string

const (
	InstrumentRegulation InstrumentType = "Regulation"
	InstrumentDirective  InstrumentType = "Directive"
	InstrumentDecision   InstrumentType = "Decision"
	InstrumentOther      InstrumentType = "Other"
)

// MatchKind grades the keyword evidence behind a category assignment.
type MatchKind string

const (
	MatchNone    MatchKind = "none"
	MatchKeyword MatchKind = "keyword"
	MatchDirect  MatchKind = "direct"
)

// Relevance is the consumer relevance tier of a taxonomy category.
type Relevance string

const (
	RelevanceLow    Relevance = "low"
	RelevanceMedium Relevance = "medium"
	RelevanceHigh   Relevance = "high"
)

// PriorityTier buckets the numeric score for triage.
type PriorityTier string

const (
	TierLow      PriorityTier = "low"
	TierMedium   PriorityTier = "medium"
	TierHigh     PriorityTier = "high"
	TierCritical PriorityTier = "critical"
)

// Category is one entry of the static policy taxonomy.
type Category struct {
	Number    int
	Name      string
	Relevance Relevance
	Keywords  []string
}

// ScoreBreakdown keeps the additive components that produced a score.
type ScoreBreakdown struct {
	CategoryMatch  int
	Relevance      int
	Consultation   int
	Status         int
	InstrumentType int
}

// Total sums every component.
func (b ScoreBreakdown) Total() int {
	return b.CategoryMatch + b.Relevance + b.Consultation + b.Status + b.InstrumentType
}

// Record accumulates classification results for a single act.
// CategoryNumber is zero when no category matched.
type Record struct {
	Identifier      string
	Title           string
	Date            string
	InstrumentType  InstrumentType
	CategoryNumber  int
	Relevance       Relevance
	MatchKind       MatchKind
	MatchedKeywords []string
	Score           int
	Tier            PriorityTier
	Breakdown       ScoreBreakdown
	EurlexURL       string
	SourceHint      string
	// Pinned marks a category taken from the Annex 2 listing itself rather
	// than inferred from keywords.
	Pinned bool
}

// HasCategory reports whether the matcher assigned a category.
func (r Record) HasCategory() bool {
	return r.CategoryNumber > 0
}

// OutputRecord is the consumer-facing shape of a classified record.
type OutputRecord struct {
	Identifier      string         `json:"identifier"`
	Title           string         `json:"title"`
	Date            string         `json:"date,omitempty"`
	InstrumentType  InstrumentType `json:"instrument_type"`
	CategoryNumber  *int           `json:"category_number,omitempty"`
	MatchKind       MatchKind      `json:"match_kind"`
	MatchedKeywords []string       `json:"matched_keywords"`
	Score           int            `json:"score"`
	PriorityTier    PriorityTier   `json:"priority_tier"`
	EurlexURL       string         `json:"eurlex_url,omitempty"`
	Pinned          bool           `json:"pinned,omitempty"`
}

// Output converts the record for persistence or printing. CategoryNumber is
// taken as already resolved: the classifier only assigns numbers present in
// its table and Pin ignores unknown ones.
func (r Record) Output() OutputRecord {
	out := OutputRecord{
		Identifier:      r.Identifier,
		Title:           r.Title,
		Date:            r.Date,
		InstrumentType:  r.InstrumentType,
		MatchKind:       r.MatchKind,
		MatchedKeywords: r.MatchedKeywords,
		Score:           r.Score,
		PriorityTier:    r.Tier,
		EurlexURL:       r.EurlexURL,
		Pinned:          r.Pinned,
	}
	if out.MatchedKeywords == nil {
		out.MatchedKeywords = []string{}
	}
	if r.HasCategory() {
		number := r.CategoryNumber
		out.CategoryNumber = &number
	}
	return out
}

// RegulatoryStatus is an external status signal for an act.
type RegulatoryStatus string

const (
	StatusUnknown             RegulatoryStatus = ""
	StatusProposedNew         RegulatoryStatus = "proposed_new"
	StatusProposedReplacement RegulatoryStatus = "proposed_replacement"
	StatusPublished           RegulatoryStatus = "published"
)

// Signals carries optional best-effort inputs to the scorer.
// A nil ConsultationDaysRemaining means the window is unknown.
type Signals struct {
	ConsultationDaysRemaining *int
	Status                    RegulatoryStatus
}

// RunReport summarises one pipeline execution for the run log.
type RunReport struct {
	ID          string
	Source      string
	Found       int
	Inserted    int
	Updated     int
	Errors      []string
	StartedAt   time.Time
	CompletedAt time.Time
}
