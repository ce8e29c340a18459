package normalize

import (
	"log/slog"
	"regexp"
	"time"
)

// CanonicalDateFormat is the stable output layout for transaction dates.
const CanonicalDateFormat = "2006/01/02"

// datePattern pairs a locator regexp with the layouts its matches can parse as.
// Numeric day/month forms are day-first: slips in the wild write 12/6/2024 for
// the twelfth of June.
type datePattern struct {
	re      *regexp.Regexp
	layouts []string
}

var datePatterns = []datePattern{
	{
		// ISO-like timestamp, e.g. "2024-06-12 14:30:05"
		re:      regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`),
		layouts: []string{"2006-01-02 15:04:05"},
	},
	{
		// our own canonical output, so Date is idempotent
		re:      regexp.MustCompile(`\d{4}/\d{2}/\d{2}`),
		layouts: []string{"2006/01/02"},
	},
	{
		// 12/6/2024, 12-6-24
		re:      regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		layouts: []string{"2/1/2006", "2-1-2006", "2/1/06", "2-1-06"},
	},
	{
		// 12 June 2024
		re:      regexp.MustCompile(`\d{1,2} [A-Za-z]+ \d{4}`),
		layouts: []string{"2 January 2006", "2 Jan 2006"},
	},
	{
		// June 12, 2024
		re:      regexp.MustCompile(`[A-Za-z]+ \d{1,2}, \d{4}`),
		layouts: []string{"January 2, 2006", "Jan 2, 2006"},
	},
}

// Date locates a date substring inside raw (the value may be followed by a
// time or trailing text), parses it permissively, and re-emits it as
// YYYY/MM/DD. Returns nil when no parseable date is present; never fails.
func Date(raw string) *string {
	loc, layouts := findDate(raw)
	if loc == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, loc); err == nil {
			out := t.Format(CanonicalDateFormat)
			return &out
		}
	}
	slog.Debug("normalize.date.unparsable", "value", loc)
	return nil
}

// findDate returns the leftmost date-shaped substring and its candidate
// layouts. Patterns are tried in declaration order; among matches the one
// starting earliest in the input wins, mirroring a single alternation scan.
func findDate(raw string) (string, []string) {
	best := -1
	var match string
	var layouts []string
	for _, p := range datePatterns {
		idx := p.re.FindStringIndex(raw)
		if idx == nil {
			continue
		}
		if best == -1 || idx[0] < best {
			best = idx[0]
			match = raw[idx[0]:idx[1]]
			layouts = p.layouts
		}
	}
	return match, layouts
}
