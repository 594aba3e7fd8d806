package pricing

import (
	"regexp"
	"strconv"
)

// NeutralWtp is the willingness-to-tutor rating assumed when an event
// title carries no parsable rating. Neutral means no price adjustment.
const NeutralWtp = 5

// Rating matchers, tried in order; the first hit wins. Kept as a list
// of separate patterns rather than one combined regexp so the
// precedence stays auditable and each matcher testable on its own.
var (
	standaloneWtpPattern = regexp.MustCompile(`\b([1-9]|10)\b`)

	labeledWtpPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:rating|willingness|wtp|willing)\s*[:\-]?\s*([1-9]|10)`),
		regexp.MustCompile(`(?i)([1-9]|10)\s*/\s*10`),
		regexp.MustCompile(`\(([1-9]|10)\)`), // e.g. "Lauren Chen (7)"
	}
)

// ParseWtpFromTitle extracts a willingness-to-tutor rating 1-10 from a
// calendar event title. A standalone number wins over labeled forms
// like "rating 3", "7/10" or "(7)" even when both appear. Anything
// outside 1-10 counts as no match, never clamped. Unparsable titles
// default to NeutralWtp.
func ParseWtpFromTitle(title string) int {
	if title == "" {
		return NeutralWtp
	}

	if n, ok := ratingFrom(standaloneWtpPattern, title); ok {
		return n
	}
	for _, p := range labeledWtpPatterns {
		if n, ok := ratingFrom(p, title); ok {
			return n
		}
	}
	return NeutralWtp
}

func ratingFrom(p *regexp.Regexp, title string) (int, bool) {
	m := p.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 10 {
		return 0, false
	}
	return n, true
}
