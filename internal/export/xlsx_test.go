package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/dataset"
)

func strptr(s string) *string { return &s }

func decptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleTable() *dataset.Table {
	return &dataset.Table{
		Columns: constants.ExportColumns,
		Rows: []dataset.Row{
			{
				TransactionDate:   strptr("2024/06/12"),
				TransactionNumber: strptr("TX12345"),
				Sender:            strptr("Jane Doe"),
				Receiver:          strptr("John Smith"),
				Note:              strptr("Rent payment"),
				DocumentID:        "slip-001.png",
				Amount:            decptr("1500.00"),
			},
			{
				DocumentID: "blur.png",
			},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, constants.ExportColumns, rows[0])
	assert.Equal(t, "2024/06/12", rows[1][0])
	assert.Equal(t, "TX12345", rows[1][1])
	assert.Equal(t, "slip-001.png", rows[1][5])
	assert.Equal(t, "1500", rows[1][6])

	// the empty record renders as blank cells, not "None" or zeros
	assert.Equal(t, "blur.png", rows[2][5])
	amount, err := f.GetCellValue(sheetName, "G3")
	require.NoError(t, err)
	assert.Equal(t, "", amount)
}

func TestWriteXLSX_EmptyTable(t *testing.T) {
	data, err := WriteXLSX(&dataset.Table{Columns: constants.ExportColumns})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
