package classify

import (
	"strings"

	"LawTracker/internal/domain"
)

// directThreshold is the hit count at which a match counts as direct.
const directThreshold = 2

// Match is the keyword matcher's verdict for one title.
type Match struct {
	CategoryNumber int
	Kind           domain.MatchKind
	Keywords       []string
}

type preparedCategory struct {
	category domain.Category
	lowered  []string
}

// Matcher scores titles against an ordered category table. It is safe
// for concurrent use once built.
type Matcher struct {
	categories []preparedCategory
}

// NewMatcher lower-cases every keyword once, keeping declaration order.
func NewMatcher(categories []domain.Category) *Matcher {
	prepared := make([]preparedCategory, 0, len(categories))
	for _, category := range categories {
		lowered := make([]string, len(category.Keywords))
		for i, keyword := range category.Keywords {
			lowered[i] = strings.ToLower(keyword)
		}
		prepared = append(prepared, preparedCategory{category: category, lowered: lowered})
	}
	return &Matcher{categories: prepared}
}

// Match counts substring keyword hits per category and returns the
// category with the strictly highest count. Ties keep the earlier category.
func (m *Matcher) Match(title string) Match {
	best := Match{Kind: domain.MatchNone}
	lower := strings.ToLower(title)
	if strings.TrimSpace(lower) == "" {
		return best
	}

	bestCount := 0
	for _, pc := range m.categories {
		found := pc.hits(lower)
		if len(found) > bestCount {
			bestCount = len(found)
			best.CategoryNumber = pc.category.Number
			best.Keywords = found
		}
	}
	best.Kind = kindFor(bestCount)
	return best
}

// MatchCategory evaluates a single category. The category number is kept
// even when nothing matched.
func (m *Matcher) MatchCategory(title string, number int) Match {
	lower := strings.ToLower(title)
	for _, pc := range m.categories {
		if pc.category.Number != number {
			continue
		}
		found := pc.hits(lower)
		return Match{CategoryNumber: number, Kind: kindFor(len(found)), Keywords: found}
	}
	return Match{Kind: domain.MatchNone}
}

func (pc preparedCategory) hits(lowerTitle string) []string {
	if strings.TrimSpace(lowerTitle) == "" {
		return nil
	}
	var found []string
	for i, keyword := range pc.lowered {
		if keyword != "" && strings.Contains(lowerTitle, keyword) {
			found = append(found, pc.category.Keywords[i])
		}
	}
	return found
}

func kindFor(count int) domain.MatchKind {
	switch {
	case count >= directThreshold:
		return domain.MatchDirect
	case count == 1:
		return domain.MatchKeyword
	default:
		return domain.MatchNone
	}
}
