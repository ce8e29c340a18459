package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/normalize"
)

// amountValueClass matches a slip amount: optional dash-like sign, 1-3 leading
// digits, optional comma-grouped triples, optional two-decimal fraction,
// optional currency suffix. The 1-3 leading digit cap keeps it from eating
// unstructured alphanumeric ids.
const amountValueClass = `[—–―-]?\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s?(?:MMK|Ks|Kyat))?`

// dateShape locates a date-bearing substring regardless of any label; slips
// often print the date with no label at all.
var dateShape = regexp.MustCompile(
	`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{1,2} [A-Za-z]+ \d{4}|[A-Za-z]+ \d{1,2}, \d{4}|\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}|\d{4}/\d{2}/\d{2}`)

// amountScan is the whole-text fallback when no amount label matched. The
// leading class rejects digits glued to letters (transaction ids) and to
// other digit runs (dates, times).
var amountScan = regexp.MustCompile(`(?:^|[^0-9A-Za-z.,])((?:[—–―-]\s?)?\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s?(?:MMK|Ks|Kyat))?)`)

// anywhereMatcher searches the entire document text for each field's label,
// in any order and at any position. Used when the slip layout is
// unpredictable.
type anywhereMatcher struct {
	number        *regexp.Regexp
	amountLabeled *regexp.Regexp
	sender        *regexp.Regexp
	receiver      *regexp.Regexp
	note          *regexp.Regexp
}

func newAnywhereMatcher(rules *RuleSet) *anywhereMatcher {
	return &anywhereMatcher{
		number:        labelPattern(rules, `(\w+)`, constants.FieldNumber),
		amountLabeled: labelPattern(rules, `(`+amountValueClass+`)`, constants.FieldAmount),
		sender:        labelPattern(rules, `([A-Za-z ]+)`, constants.FieldSender),
		receiver:      labelPattern(rules, `([A-Za-z0-9 ]+)`, constants.FieldReceiver),
		note:          labelPattern(rules, `(.+)`, constants.FieldNote),
	}
}

// labelPattern compiles "<label><optional separator><value>" for the given
// kinds. A trailing word boundary keeps short labels such as "To" from
// matching inside "Total".
func labelPattern(rules *RuleSet, valueClass string, kinds ...constants.FieldKind) *regexp.Regexp {
	var quoted []string
	for _, k := range kinds {
		for _, syn := range rules.Synonyms(k) {
			q := regexp.QuoteMeta(syn)
			if endsWithWordChar(syn) {
				q += `\b`
			}
			quoted = append(quoted, q)
		}
	}
	// longer labels first so "Total Amount" beats "Amount"
	sortByLengthDesc(quoted)
	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)\s*:?\s*` + valueClass)
}

func (m *anywhereMatcher) match(rec *TransactionRecord, text string) {
	if loc := dateShape.FindString(text); loc != "" {
		if d := normalize.Date(loc); d != nil {
			rec.Date = d
		}
		// a time printed alongside the date rides along with it
		if t := normalize.Time(loc); t != nil {
			rec.Time = t
		}
	}

	if g := firstGroup(m.number, text); g != "" {
		rec.set(constants.FieldNumber, g)
	}
	if g := firstGroup(m.sender, text); g != "" {
		rec.set(constants.FieldSender, g)
	}
	if g := firstGroup(m.receiver, text); g != "" {
		rec.set(constants.FieldReceiver, g)
	}
	if g := firstGroup(m.note, text); g != "" {
		rec.set(constants.FieldNote, g)
	}

	m.matchAmount(rec, text)
}

// matchAmount prefers a label-anchored amount; the whole-text numeric scan is
// a fallback only, since bare digit runs near ids and dates are easy false
// positives.
func (m *anywhereMatcher) matchAmount(rec *TransactionRecord, text string) {
	raw := firstGroup(m.amountLabeled, text)
	if raw == "" {
		raw = scanAmount(text)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	rec.RawAmount = &raw
	rec.set(constants.FieldAmount, normalize.Amount(raw))
}

// scanAmount returns the first scan candidate that looks like money rather
// than a stray digit run: it must carry a comma group, a decimal fraction, or
// a currency token.
func scanAmount(text string) string {
	for _, sub := range amountScan.FindAllStringSubmatch(text, -1) {
		cand := strings.TrimSpace(sub[1])
		if looksLikeMoney(cand) {
			return cand
		}
	}
	return ""
}

func looksLikeMoney(s string) bool {
	if strings.ContainsAny(s, ".,") {
		return true
	}
	for _, tok := range constants.CurrencyTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func firstGroup(re *regexp.Regexp, text string) string {
	sub := re.FindStringSubmatch(text)
	if sub == nil {
		return ""
	}
	return sub[len(sub)-1]
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func sortByLengthDesc(ss []string) {
	sort.SliceStable(ss, func(i, j int) bool { return len(ss[i]) > len(ss[j]) })
}
