package classify

import (
	"LawTracker/internal/domain"
	"LawTracker/internal/taxonomy"
)

// Classifier runs normalization, instrument detection and keyword matching
// over raw records.
type Classifier struct {
	matcher *Matcher
}

// New builds a classifier over the bundled taxonomy.
func New() *Classifier {
	return NewWithCategories(taxonomy.All())
}

// NewWithCategories builds a classifier over a caller-supplied table.
func NewWithCategories(categories []domain.Category) *Classifier {
	return &Classifier{matcher: NewMatcher(categories)}
}

// Classify fills identifier-derived and title-derived fields. It only adds
// information; an instrument type already supplied by the source is kept
// when the identifier cannot decide.
func (c *Classifier) Classify(rec domain.Record) domain.Record {
	rec.Identifier = NormalizeIdentifier(rec.Identifier)
	rec.Title = NormalizeTitle(rec.Title)
	rec.Date = NormalizeDate(rec.Date)
	if rec.EurlexURL == "" {
		rec.EurlexURL = EurlexURL(rec.Identifier)
	}

	instrument := Instrument(rec.Identifier, rec.Title)
	if instrument != domain.InstrumentOther || rec.InstrumentType == "" {
		rec.InstrumentType = instrument
	}

	match := c.matcher.Match(rec.Title)
	rec.CategoryNumber = match.CategoryNumber
	rec.MatchKind = match.Kind
	rec.MatchedKeywords = match.Keywords
	rec.Relevance = ""
	if category, ok := taxonomyLookup(c, match.CategoryNumber); ok {
		rec.Relevance = category.Relevance
	}
	return rec
}

// Pin assigns a known category without competing it against the rest of
// the table, as used for the baseline list of foundational acts. The match
// kind still reflects the keyword evidence for that category.
func (c *Classifier) Pin(rec domain.Record, categoryNumber int) domain.Record {
	rec = c.Classify(rec)
	category, ok := taxonomyLookup(c, categoryNumber)
	if !ok {
		return rec
	}
	match := c.matcher.MatchCategory(rec.Title, category.Number)
	rec.CategoryNumber = category.Number
	rec.Relevance = category.Relevance
	rec.MatchKind = match.Kind
	rec.MatchedKeywords = match.Keywords
	rec.Pinned = true
	return rec
}

// Category resolves a number against the classifier's table.
func (c *Classifier) Category(number int) (domain.Category, bool) {
	return taxonomyLookup(c, number)
}

func taxonomyLookup(c *Classifier, number int) (domain.Category, bool) {
	if number <= 0 {
		return domain.Category{}, false
	}
	for _, pc := range c.matcher.categories {
		if pc.category.Number == number {
			return pc.category, true
		}
	}
	return domain.Category{}, false
}
