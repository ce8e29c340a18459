package export

import (
	"encoding/csv"
	"io"

	"github.com/zawlinnaung/slip-tracker/internal/dataset"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVContentType is the MIME type for download responses.
const CSVContentType = "text/csv; charset=utf-8"

// CSVWriter wraps csv.Writer for exporting the tabular projection.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteTable writes the header row and every data row.
func (w *CSVWriter) WriteTable(t *dataset.Table) error {
	if err := w.csv.Write(t.Columns); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := w.csv.Write(rowToCSV(&t.Rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from a previous write or flush.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func rowToCSV(r *dataset.Row) []string {
	amount := ""
	if r.Amount != nil {
		amount = r.Amount.StringFixed(2)
	}
	return []string{
		strOrEmpty(r.TransactionDate),
		strOrEmpty(r.TransactionNumber),
		strOrEmpty(r.Sender),
		strOrEmpty(r.Receiver),
		strOrEmpty(r.Note),
		r.DocumentID,
		amount,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
