package normalize

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// CanonicalTimeFormat is the stable output layout for transaction times.
const CanonicalTimeFormat = "15:04:05"

var reTime = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AaPp][Mm])?\b`)

var timeLayouts = []string{
	"3:04:05 PM",
	"3:04 PM",
	"15:04:05",
	"15:04",
}

// Time locates a 12-hour or 24-hour time substring inside raw and emits it
// as HH:MM:SS. Returns nil when no parseable time is present; never fails.
func Time(raw string) *string {
	loc := reTime.FindString(raw)
	if loc == "" {
		return nil
	}
	// time.Parse wants "PM" upper-cased and space-separated
	loc = strings.ToUpper(loc)
	loc = strings.Replace(loc, "AM", " AM", 1)
	loc = strings.Replace(loc, "PM", " PM", 1)
	loc = strings.Join(strings.Fields(loc), " ")
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, loc); err == nil {
			out := t.Format(CanonicalTimeFormat)
			return &out
		}
	}
	slog.Debug("normalize.time.unparsable", "value", loc)
	return nil
}
