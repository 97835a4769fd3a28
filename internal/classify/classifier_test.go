package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LawTracker/internal/domain"
)

func TestClassifierClassify(t *testing.T) {
	t.Parallel()

	c := New()
	rec := c.Classify(domain.Record{
		Identifier: " 32008r1272 ",
		Title:      "Regulation  on classification, labelling, packaging of chemicals",
		Date:       "2008-12-16T00:00:00Z",
	})

	assert.Equal(t, "32008R1272", rec.Identifier)
	assert.Equal(t, "Regulation on classification, labelling, packaging of chemicals", rec.Title)
	assert.Equal(t, "2008-12-16", rec.Date)
	assert.Equal(t, domain.InstrumentRegulation, rec.InstrumentType)
	assert.Equal(t, 23, rec.CategoryNumber)
	assert.Equal(t, domain.MatchDirect, rec.MatchKind)
	assert.Equal(t, domain.RelevanceHigh, rec.Relevance)
	assert.Equal(t, "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32008R1272", rec.EurlexURL)
	assert.False(t, rec.Pinned)
}

func TestClassifierNoMatch(t *testing.T) {
	t.Parallel()

	rec := New().Classify(domain.Record{Identifier: "32024D0001", Title: "Commission notice on the annual report"})

	assert.False(t, rec.HasCategory())
	assert.Equal(t, domain.MatchNone, rec.MatchKind)
	assert.Empty(t, rec.MatchedKeywords)
	assert.Empty(t, rec.Relevance)
	assert.Equal(t, domain.InstrumentDecision, rec.InstrumentType)
}

func TestClassifierKeepsSourceInstrument(t *testing.T) {
	t.Parallel()

	c := New()

	rec := c.Classify(domain.Record{Identifier: "52023PC0001", Title: "Proposal", InstrumentType: domain.InstrumentDirective})
	assert.Equal(t, domain.InstrumentDirective, rec.InstrumentType)

	rec = c.Classify(domain.Record{Identifier: "32023R0001", Title: "Proposal", InstrumentType: domain.InstrumentDirective})
	assert.Equal(t, domain.InstrumentRegulation, rec.InstrumentType, "identifier code wins over source hint")

	rec = c.Classify(domain.Record{Identifier: "52023PC0001", Title: "Proposal"})
	assert.Equal(t, domain.InstrumentOther, rec.InstrumentType)
}

func TestClassifierPin(t *testing.T) {
	t.Parallel()

	c := New()

	rec := c.Pin(domain.Record{Identifier: "32009L0048", Title: "Directive on the safety of toys"}, 17)
	require.True(t, rec.Pinned)
	assert.Equal(t, 17, rec.CategoryNumber)
	assert.Equal(t, domain.RelevanceHigh, rec.Relevance)
	assert.Equal(t, domain.MatchKeyword, rec.MatchKind)
	assert.Equal(t, []string{"toys"}, rec.MatchedKeywords)

	rec = c.Pin(domain.Record{Identifier: "32009L0048", Title: "Unrelated wording"}, 17)
	assert.True(t, rec.Pinned)
	assert.Equal(t, 17, rec.CategoryNumber)
	assert.Equal(t, domain.MatchNone, rec.MatchKind)

	rec = c.Pin(domain.Record{Identifier: "32009L0048", Title: "Unrelated wording"}, 99)
	assert.False(t, rec.Pinned)
	assert.False(t, rec.HasCategory())
}

func TestClassifierCategory(t *testing.T) {
	t.Parallel()

	c := NewWithCategories(testCategories())

	category, ok := c.Category(2)
	require.True(t, ok)
	assert.Equal(t, "Second", category.Name)

	_, ok = c.Category(0)
	assert.False(t, ok)
}
