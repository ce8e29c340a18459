package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zawlinnaung/slip-tracker/constants"
)

// TransactionRecord is the normalized result of extracting one document.
// Every field except DocumentID is optional: nil means the field was absent
// or unparsable, which is an expected outcome, not an error. An empty string
// never stands in for "missing".
type TransactionRecord struct {
	DocumentID string

	Date      *string // canonical YYYY/MM/DD
	Time      *string // canonical HH:MM:SS
	Number    *string
	Type      *string
	Amount    *string // numeric content only, sign normalized, commas stripped
	RawAmount *string // as matched in the source text
	Sender    *string
	Receiver  *string
	Note      *string
}

// Field returns the record's value for the given kind, or nil.
func (r *TransactionRecord) Field(kind constants.FieldKind) *string {
	switch kind {
	case constants.FieldDate:
		return r.Date
	case constants.FieldTime:
		return r.Time
	case constants.FieldNumber:
		return r.Number
	case constants.FieldType:
		return r.Type
	case constants.FieldAmount:
		return r.Amount
	case constants.FieldSender:
		return r.Sender
	case constants.FieldReceiver:
		return r.Receiver
	case constants.FieldNote:
		return r.Note
	}
	return nil
}

// AmountValue coerces the normalized amount into a decimal. Returns nil when
// the amount is absent or not numeric, never zero, since zero is a real
// amount.
func (r *TransactionRecord) AmountValue() *decimal.Decimal {
	if r.Amount == nil {
		return nil
	}
	s := strings.ReplaceAll(*r.Amount, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// set stores a non-empty trimmed value for kind, keeping the first value won.
func (r *TransactionRecord) set(kind constants.FieldKind, value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	slot := r.slot(kind)
	if slot == nil || *slot != nil {
		return false
	}
	*slot = &v
	return true
}

func (r *TransactionRecord) slot(kind constants.FieldKind) **string {
	switch kind {
	case constants.FieldDate:
		return &r.Date
	case constants.FieldTime:
		return &r.Time
	case constants.FieldNumber:
		return &r.Number
	case constants.FieldType:
		return &r.Type
	case constants.FieldAmount:
		return &r.Amount
	case constants.FieldSender:
		return &r.Sender
	case constants.FieldReceiver:
		return &r.Receiver
	case constants.FieldNote:
		return &r.Note
	}
	return nil
}
