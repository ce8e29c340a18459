// Package export serializes the tabular projection to persisted formats.
// Sinks receive a materialized table and never reach back into the
// aggregator.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zawlinnaung/slip-tracker/internal/dataset"
)

const sheetName = "Transactions"

// XLSXContentType is the MIME type for download responses.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX renders the table as an XLSX workbook and returns its bytes.
// Absent cells stay empty; amounts are written as numbers so spreadsheet
// consumers can sum the column.
func WriteXLSX(t *dataset.Table) ([]byte, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	for rowIdx := range t.Rows {
		r := &t.Rows[rowIdx]
		row := rowIdx + 2

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		writeStr := func(col int, p *string) {
			if p != nil {
				write(col, *p)
			}
		}

		writeStr(1, r.TransactionDate)
		writeStr(2, r.TransactionNumber)
		writeStr(3, r.Sender)
		writeStr(4, r.Receiver)
		writeStr(5, r.Note)
		write(6, r.DocumentID)
		if r.Amount != nil {
			write(7, r.Amount.InexactFloat64())
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
