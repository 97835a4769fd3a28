package classify

import (
	"testing"

	"LawTracker/internal/domain"
)

func TestInstrument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		identifier string
		title      string
		want       domain.InstrumentType
	}{
		{name: "regulation code", identifier: "32017R0745", want: domain.InstrumentRegulation},
		{name: "directive code", identifier: "32019L0904", want: domain.InstrumentDirective},
		{name: "decision code", identifier: "32020D1234", want: domain.InstrumentDecision},
		{name: "lower case code", identifier: "32017r0745", want: domain.InstrumentRegulation},
		{name: "unknown code ignores title", identifier: "52023PC0001", title: "Proposal for a Regulation", want: domain.InstrumentOther},
		{name: "padded identifier", identifier: "  32017R0745  ", want: domain.InstrumentRegulation},
		{name: "short identifier uses title", identifier: "C123", title: "Council Directive on toys", want: domain.InstrumentDirective},
		{name: "empty identifier uses title", title: "Commission DECISION of 3 May", want: domain.InstrumentDecision},
		{name: "title order regulation first", title: "Decision amending a regulation", want: domain.InstrumentRegulation},
		{name: "nothing to go on", title: "Notice", want: domain.InstrumentOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Instrument(tc.identifier, tc.title); got != tc.want {
				t.Fatalf("Instrument(%q, %q) = %s, want %s", tc.identifier, tc.title, got, tc.want)
			}
		})
	}
}
