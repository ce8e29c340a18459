package constants

// FieldKind identifies one structured attribute of a payment slip.
type FieldKind string

const (
	FieldDate     FieldKind = "TRANSACTION_DATE"
	FieldTime     FieldKind = "TRANSACTION_TIME"
	FieldNumber   FieldKind = "TRANSACTION_NUMBER"
	FieldType     FieldKind = "TRANSACTION_TYPE"
	FieldAmount   FieldKind = "AMOUNT"
	FieldSender   FieldKind = "SENDER"
	FieldReceiver FieldKind = "RECEIVER"
	FieldNote     FieldKind = "NOTE"
)

// AllFieldKinds lists every extractable field in a stable order.
var AllFieldKinds = []FieldKind{
	FieldDate,
	FieldTime,
	FieldNumber,
	FieldType,
	FieldAmount,
	FieldSender,
	FieldReceiver,
	FieldNote,
}

// ExportColumns is the fixed column order of the tabular projection.
// Amount stays last so spreadsheet consumers can sum the final column.
var ExportColumns = []string{
	"Transaction Date",
	"Transaction Number",
	"Sender",
	"Receiver",
	"Notes",
	"Image File",
	"Amount",
}

// CurrencyTokens are the currency suffixes stripped during amount
// normalization. Kyat amounts show up with any of these on real slips.
var CurrencyTokens = []string{"MMK", "Ks", "Kyat"}
