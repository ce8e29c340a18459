package extract

import (
	"regexp"
	"strings"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/normalize"
)

// lineRule anchors one field's labels to the start of a line. Anchoring
// disambiguates lines where labels would otherwise collide, e.g. "Amount"
// against "Total Amount".
type lineRule struct {
	kind constants.FieldKind
	re   *regexp.Regexp
}

// lineMatcher processes a document line by line. Rules are evaluated in a
// fixed priority order and the first rule that matches consumes the line; a
// line contributes to at most one field.
type lineMatcher struct {
	rules []lineRule
}

func newLineMatcher(rules *RuleSet) *lineMatcher {
	anchored := func(valueClass string, kinds ...constants.FieldKind) *regexp.Regexp {
		p := labelPattern(rules, valueClass, kinds...)
		return regexp.MustCompile(`^(?:` + p.String() + `)`)
	}
	return &lineMatcher{rules: []lineRule{
		// FieldDate handles "Date and Time" lines, filling time alongside date.
		{constants.FieldDate, anchored(`(.+)`, constants.FieldDate, constants.FieldTime)},
		{constants.FieldNumber, anchored(`(\w+)`, constants.FieldNumber)},
		{constants.FieldType, anchored(`([A-Za-z ]+)`, constants.FieldType)},
		{constants.FieldAmount, anchored(`(.+)`, constants.FieldAmount)},
		{constants.FieldSender, anchored(`([A-Za-z ]+)`, constants.FieldSender)},
		{constants.FieldReceiver, anchored(`([A-Za-z0-9 ]+)`, constants.FieldReceiver)},
		{constants.FieldNote, anchored(`(.+)`, constants.FieldNote)},
	}}
}

func (m *lineMatcher) match(rec *TransactionRecord, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, rule := range m.rules {
			sub := rule.re.FindStringSubmatch(line)
			if sub == nil {
				continue
			}
			m.apply(rec, rule.kind, sub[len(sub)-1])
			break // line consumed; no other rule sees it
		}
	}
}

func (m *lineMatcher) apply(rec *TransactionRecord, kind constants.FieldKind, raw string) {
	switch kind {
	case constants.FieldDate:
		if d := normalize.Date(raw); d != nil && rec.Date == nil {
			rec.Date = d
		}
		if t := normalize.Time(raw); t != nil && rec.Time == nil {
			rec.Time = t
		}
	case constants.FieldAmount:
		raw = strings.TrimSpace(raw)
		if rec.RawAmount == nil && raw != "" {
			rec.RawAmount = &raw
			rec.set(constants.FieldAmount, normalize.Amount(raw))
		}
	default:
		rec.set(kind, raw)
	}
}
