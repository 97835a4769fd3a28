package taxonomy

import (
	"testing"

	"LawTracker/internal/domain"
)

func TestAllIsOrderedAndComplete(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 47 {
		t.Fatalf("expected 47 categories, got %d", len(all))
	}
	for i, category := range all {
		if category.Number != i+1 {
			t.Fatalf("category at %d has number %d", i, category.Number)
		}
		if category.Name == "" {
			t.Fatalf("category %d has no name", category.Number)
		}
		if len(category.Keywords) == 0 {
			t.Fatalf("category %d has no keywords", category.Number)
		}
		switch category.Relevance {
		case domain.RelevanceLow, domain.RelevanceMedium, domain.RelevanceHigh:
		default:
			t.Fatalf("category %d has relevance %q", category.Number, category.Relevance)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0].Name = "changed"
	first[0].Keywords[0] = "changed"

	if All()[0].Name == "changed" {
		t.Fatal("mutating the result of All changed the table")
	}
	if got, _ := Lookup(1); got.Keywords[0] == "changed" {
		t.Fatal("mutating keywords returned by All changed the table")
	}

	looked, _ := Lookup(2)
	looked.Keywords[0] = "changed"
	if All()[1].Keywords[0] == "changed" {
		t.Fatal("mutating keywords returned by Lookup changed the table")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	category, ok := Lookup(23)
	if !ok {
		t.Fatal("category 23 not found")
	}
	if category.Relevance != domain.RelevanceHigh {
		t.Fatalf("unexpected relevance: %s", category.Relevance)
	}

	found := map[string]bool{}
	for _, keyword := range category.Keywords {
		found[keyword] = true
	}
	for _, want := range []string{"chemicals", "CLP", "classification, labelling, packaging"} {
		if !found[want] {
			t.Fatalf("category 23 misses keyword %q", want)
		}
	}

	if _, ok := Lookup(0); ok {
		t.Fatal("category 0 should not exist")
	}
	if _, ok := Lookup(48); ok {
		t.Fatal("category 48 should not exist")
	}
}
