// Package scoring turns classification results and optional external
// signals into a priority score and tier.
package scoring

import (
	"LawTracker/internal/domain"
	"LawTracker/internal/taxonomy"
)

const (
	pointsDirectMatch  = 10
	pointsKeywordMatch = 5

	pointsRelevanceHigh   = 3
	pointsRelevanceMedium = 1

	pointsConsultationUrgent = 5
	pointsConsultationSoon   = 3
	pointsConsultationOpen   = 2

	pointsStatusProposed  = 4
	pointsStatusPublished = 2

	pointsRegulation = 2
	pointsDirective  = 1
	pointsDecision   = 1
)

// Tier cutoffs, inclusive lower bounds.
const (
	criticalFrom = 18
	highFrom     = 12
	mediumFrom   = 6
)

// CategoryLookup resolves a category number.
type CategoryLookup func(number int) (domain.Category, bool)

// Scorer is stateless apart from its category lookup.
type Scorer struct {
	lookup CategoryLookup
}

// New returns a scorer over the bundled taxonomy when lookup is nil.
func New(lookup CategoryLookup) *Scorer {
	if lookup == nil {
		lookup = taxonomy.Lookup
	}
	return &Scorer{lookup: lookup}
}

// Breakdown computes each additive component. Absent signals add nothing.
func (s *Scorer) Breakdown(rec domain.Record, signals domain.Signals) domain.ScoreBreakdown {
	var b domain.ScoreBreakdown

	switch {
	case rec.Pinned || rec.MatchKind == domain.MatchDirect:
		b.CategoryMatch = pointsDirectMatch
	case rec.MatchKind == domain.MatchKeyword:
		b.CategoryMatch = pointsKeywordMatch
	}

	if rec.HasCategory() {
		if category, ok := s.lookup(rec.CategoryNumber); ok {
			b.Relevance = relevancePoints(category.Relevance)
		}
	}

	if days := signals.ConsultationDaysRemaining; days != nil {
		switch {
		case *days < 14:
			b.Consultation = pointsConsultationUrgent
		case *days < 30:
			b.Consultation = pointsConsultationSoon
		default:
			b.Consultation = pointsConsultationOpen
		}
	}

	switch signals.Status {
	case domain.StatusProposedNew, domain.StatusProposedReplacement:
		b.Status = pointsStatusProposed
	case domain.StatusPublished:
		b.Status = pointsStatusPublished
	}

	switch rec.InstrumentType {
	case domain.InstrumentRegulation:
		b.InstrumentType = pointsRegulation
	case domain.InstrumentDirective:
		b.InstrumentType = pointsDirective
	case domain.InstrumentDecision:
		b.InstrumentType = pointsDecision
	}

	return b
}

// Score returns the total and its tier.
func (s *Scorer) Score(rec domain.Record, signals domain.Signals) (int, domain.PriorityTier) {
	total := s.Breakdown(rec, signals).Total()
	return total, TierFor(total)
}

// Apply stores score, tier and breakdown on the record.
func (s *Scorer) Apply(rec domain.Record, signals domain.Signals) domain.Record {
	rec.Breakdown = s.Breakdown(rec, signals)
	rec.Score = rec.Breakdown.Total()
	rec.Tier = TierFor(rec.Score)
	return rec
}

// TierFor buckets a score, highest tier first.
func TierFor(score int) domain.PriorityTier {
	switch {
	case score >= criticalFrom:
		return domain.TierCritical
	case score >= highFrom:
		return domain.TierHigh
	case score >= mediumFrom:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

func relevancePoints(relevance domain.Relevance) int {
	switch relevance {
	case domain.RelevanceHigh:
		return pointsRelevanceHigh
	case domain.RelevanceMedium:
		return pointsRelevanceMedium
	default:
		return 0
	}
}
