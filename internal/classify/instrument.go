package classify

import (
	"strings"

	"LawTracker/internal/domain"
)

// typeCodeIndex is the position of the instrument letter in a canonical
// CELEX number: sector digit, four-digit year, type code, sequence.
const typeCodeIndex = 5

var titleInstrumentWords = []struct {
	word       string
	instrument domain.InstrumentType
}{
	{"regulation", domain.InstrumentRegulation},
	{"directive", domain.InstrumentDirective},
	{"decision", domain.InstrumentDecision},
}

// Instrument derives the instrument type from the identifier's type code,
// falling back to words in the title when the identifier is too short.
func Instrument(identifier, title string) domain.InstrumentType {
	id := strings.TrimSpace(identifier)
	if len(id) > typeCodeIndex {
		return instrumentFromCode(id[typeCodeIndex])
	}
	return instrumentFromTitle(title)
}

func instrumentFromCode(code byte) domain.InstrumentType {
	switch code {
	case 'R', 'r':
		return domain.InstrumentRegulation
	case 'L', 'l':
		return domain.InstrumentDirective
	case 'D', 'd':
		return domain.InstrumentDecision
	default:
		return domain.InstrumentOther
	}
}

func instrumentFromTitle(title string) domain.InstrumentType {
	lower := strings.ToLower(title)
	for _, candidate := range titleInstrumentWords {
		if strings.Contains(lower, candidate.word) {
			return candidate.instrument
		}
	}
	return domain.InstrumentOther
}
