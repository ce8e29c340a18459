package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zawlinnaung/slip-tracker/internal/common"
)

func newTestExtractor(t *testing.T, strategy Strategy) *Extractor {
	t.Helper()
	ex, err := NewExtractor(strategy, nil, nil)
	require.NoError(t, err)
	return ex
}

func strval(t *testing.T, p *string) string {
	t.Helper()
	require.NotNil(t, p)
	return *p
}

func TestParseStrategy(t *testing.T) {
	for _, in := range []string{"anywhere", "ANYWHERE", " Line "} {
		_, err := ParseStrategy(in)
		assert.NoError(t, err, "input %q", in)
	}
	_, err := ParseStrategy("auto")
	assert.ErrorIs(t, err, common.ErrInvalidStrategy)
}

func TestNewExtractor_RejectsBadStrategy(t *testing.T) {
	_, err := NewExtractor("detect", nil, nil)
	assert.ErrorIs(t, err, common.ErrInvalidStrategy)
}

func TestExtract_LineAnchored(t *testing.T) {
	text := strings.Join([]string{
		"Transaction ID: TX12345",
		"Date and Time: 12 June 2024 14:30",
		"From: Jane Doe",
		"To: John Smith",
		"Amount: 1,500.00 MMK",
		"Notes: Rent payment",
	}, "\n")

	rec := newTestExtractor(t, StrategyLine).Extract("slip-001.png", text)

	assert.Equal(t, "slip-001.png", rec.DocumentID)
	assert.Equal(t, "TX12345", strval(t, rec.Number))
	assert.Equal(t, "2024/06/12", strval(t, rec.Date))
	assert.Equal(t, "14:30:00", strval(t, rec.Time))
	assert.Equal(t, "Jane Doe", strval(t, rec.Sender))
	assert.Equal(t, "John Smith", strval(t, rec.Receiver))
	assert.Equal(t, "1500.00", strval(t, rec.Amount))
	assert.Equal(t, "1,500.00 MMK", strval(t, rec.RawAmount))
	assert.Equal(t, "Rent payment", strval(t, rec.Note))
}

func TestExtract_LineAnchored_AmountLabelsDoNotCollide(t *testing.T) {
	text := strings.Join([]string{
		"Transaction Type: Transfer",
		"Total Amount: 2,000.00 MMK",
	}, "\n")

	rec := newTestExtractor(t, StrategyLine).Extract("doc", text)

	assert.Equal(t, "Transfer", strval(t, rec.Type))
	// "Total Amount" is consumed by the amount rule, not by "To"
	assert.Nil(t, rec.Receiver)
	assert.Equal(t, "2000.00", strval(t, rec.Amount))
}

func TestExtract_LineAnchored_FirstValueWins(t *testing.T) {
	text := "Amount: 100.00\nAmount: 999.00"
	rec := newTestExtractor(t, StrategyLine).Extract("doc", text)
	assert.Equal(t, "100.00", strval(t, rec.Amount))
}

func TestExtract_Anywhere(t *testing.T) {
	text := "Reference ID: AB99 ... From: Alice ... —250.00 Ks"

	rec := newTestExtractor(t, StrategyAnywhere).Extract("slip-002.jpg", text)

	assert.Equal(t, "AB99", strval(t, rec.Number))
	assert.Equal(t, "Alice", strval(t, rec.Sender))
	assert.Equal(t, "-250.00", strval(t, rec.Amount))
}

func TestExtract_Anywhere_LabeledAmountBeatsScan(t *testing.T) {
	text := "Sent 9,999.00 fee then Amount: 1,500.00 MMK"
	rec := newTestExtractor(t, StrategyAnywhere).Extract("doc", text)
	assert.Equal(t, "1500.00", strval(t, rec.Amount))
}

func TestExtract_Anywhere_ScanIgnoresIDsAndDates(t *testing.T) {
	// digits glued to letters and bare date components must not become amounts
	text := "Transaction ID: TX12345 on 12/6/2024"
	rec := newTestExtractor(t, StrategyAnywhere).Extract("doc", text)
	assert.Equal(t, "TX12345", strval(t, rec.Number))
	assert.Equal(t, "2024/06/12", strval(t, rec.Date))
	assert.Nil(t, rec.Amount)
}

func TestExtract_Anywhere_DateFoldsTime(t *testing.T) {
	rec := newTestExtractor(t, StrategyAnywhere).Extract("doc", "2024-06-12 14:30:05 Transfer")
	assert.Equal(t, "2024/06/12", strval(t, rec.Date))
	assert.Equal(t, "14:30:05", strval(t, rec.Time))
}

func TestExtract_TotalOverGarbage(t *testing.T) {
	inputs := []string{
		"%%% ###",
		"::::",
		strings.Repeat("a", 10_000),
		"From:",  // label with no value
		"\n\n\n", // blank lines only
	}
	for _, strategy := range []Strategy{StrategyAnywhere, StrategyLine} {
		ex := newTestExtractor(t, strategy)
		for _, in := range inputs {
			rec := ex.Extract("doc", in)
			assert.Equal(t, "doc", rec.DocumentID)
			assert.Equal(t, 0, rec.presentCount(), "strategy %s input %q", strategy, in)
		}
	}
}

func TestRecord_AmountValue(t *testing.T) {
	amt := "1500.50"
	rec := TransactionRecord{DocumentID: "d", Amount: &amt}
	v := rec.AmountValue()
	require.NotNil(t, v)
	assert.Equal(t, "1500.5", v.String())

	bad := "pending"
	rec.Amount = &bad
	assert.Nil(t, rec.AmountValue())

	rec.Amount = nil
	assert.Nil(t, rec.AmountValue())
}
