package classify

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// MaxTitleLength bounds stored titles, counted in runes.
	MaxTitleLength   = 500
	truncationMarker = "..."
	eurlexURLPrefix  = "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:"
)

// NormalizeIdentifier trims and upper-cases a CELEX identifier so copies
// from different sources compare equal.
func NormalizeIdentifier(identifier string) string {
	return strings.ToUpper(strings.TrimSpace(identifier))
}

// NormalizeTitle collapses whitespace runs and truncates to MaxTitleLength
// runes, ending truncated titles with a marker.
func NormalizeTitle(title string) string {
	collapsed := strings.Join(strings.Fields(title), " ")
	runes := []rune(collapsed)
	if len(runes) <= MaxTitleLength {
		return collapsed
	}
	keep := MaxTitleLength - len(truncationMarker)
	return string(runes[:keep]) + truncationMarker
}

var celexLinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`CELEX[:%](?:3A)?(\d+[A-Z]\d+)`),
	regexp.MustCompile(`uri=CELEX:(\d+[A-Z]\d+)`),
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02Z07:00",
}

// NormalizeDate reduces a source date to YYYY-MM-DD. Unparseable input
// yields an empty string.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	if len(raw) >= 10 {
		if parsed, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return ""
}

// EurlexURL builds the public document link for an identifier.
func EurlexURL(identifier string) string {
	if identifier == "" {
		return ""
	}
	return eurlexURLPrefix + identifier
}

// CELEXFromLink extracts a CELEX number from an EUR-Lex URL, trying the
// percent-decoded form as well.
func CELEXFromLink(link string) string {
	candidates := []string{link}
	if decoded, err := url.QueryUnescape(link); err == nil && decoded != link {
		candidates = append(candidates, decoded)
	}
	for _, candidate := range candidates {
		for _, expr := range celexLinkPatterns {
			if m := expr.FindStringSubmatch(candidate); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
