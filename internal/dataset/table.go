package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/extract"
)

// Row is one record projected onto the fixed column order. Nil cells are
// typed-absent, never an empty string or a zero amount standing in for
// "could not parse".
type Row struct {
	TransactionDate   *string          `json:"transaction_date"`
	TransactionNumber *string          `json:"transaction_number"`
	Sender            *string          `json:"sender"`
	Receiver          *string          `json:"receiver"`
	Note              *string          `json:"notes"`
	DocumentID        string           `json:"image_file"`
	Amount            *decimal.Decimal `json:"amount"`
}

// Table is the tabular projection of an aggregator's records, insertion
// order preserved.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Table materializes the fixed-column projection. Amount cells are coerced
// to decimal; a record whose amount does not parse gets a nil cell.
func (a *Aggregator) Table() *Table {
	t := &Table{
		Columns: constants.ExportColumns,
		Rows:    make([]Row, 0, len(a.records)),
	}
	for i := range a.records {
		t.Rows = append(t.Rows, projectRow(&a.records[i]))
	}
	return t
}

func projectRow(rec *extract.TransactionRecord) Row {
	return Row{
		TransactionDate:   rec.Date,
		TransactionNumber: rec.Number,
		Sender:            rec.Sender,
		Receiver:          rec.Receiver,
		Note:              rec.Note,
		DocumentID:        rec.DocumentID,
		Amount:            rec.AmountValue(),
	}
}
