package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zawlinnaung/slip-tracker/internal/common"
)

// Strategy selects how labels are located in the document text. This is a
// configuration choice, not auto-detected.
type Strategy string

const (
	// StrategyAnywhere searches the whole text for labels in any order.
	StrategyAnywhere Strategy = "anywhere"
	// StrategyLine requires each label at the start of its own line.
	StrategyLine Strategy = "line"
)

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAnywhere:
		return StrategyAnywhere, nil
	case StrategyLine:
		return StrategyLine, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidStrategy, s)
}

// Extractor produces one TransactionRecord per document text.
type Extractor struct {
	strategy Strategy
	anywhere *anywhereMatcher
	line     *lineMatcher
	logger   *slog.Logger
}

// NewExtractor builds an extractor for the given strategy and ruleset. A nil
// ruleset means the built-in synonyms.
func NewExtractor(strategy Strategy, rules *RuleSet, logger *slog.Logger) (*Extractor, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if rules == nil {
		rules = DefaultRuleSet()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		strategy: strategy,
		anywhere: newAnywhereMatcher(rules),
		line:     newLineMatcher(rules),
		logger:   logger,
	}, nil
}

// Strategy returns the configured matching strategy.
func (e *Extractor) Strategy() Strategy {
	return e.strategy
}

// Extract runs the configured matching strategy over the document text. It
// is total over any input: malformed or adversarial text yields a record with
// every optional field absent, never an error. Callers must not pass empty
// text here; a document with no recognized text is skipped upstream with a
// warning, which is a different outcome than a data-bearing document that
// matched nothing.
func (e *Extractor) Extract(documentID, text string) TransactionRecord {
	rec := TransactionRecord{DocumentID: documentID}
	switch e.strategy {
	case StrategyLine:
		e.line.match(&rec, text)
	default:
		e.anywhere.match(&rec, text)
	}
	e.logger.Debug("extract.done",
		"document_id", documentID,
		"strategy", string(e.strategy),
		"fields", rec.presentCount(),
	)
	return rec
}

func (r *TransactionRecord) presentCount() int {
	n := 0
	for _, p := range []*string{r.Date, r.Time, r.Number, r.Type, r.Amount, r.Sender, r.Receiver, r.Note} {
		if p != nil {
			n++
		}
	}
	return n
}
