package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zawlinnaung/slip-tracker/internal/common"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func TestRecognize(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("Amount:   1,500.00 MMK\r\nFrom: Jane Doe\r\n")}
	r := NewRecognizer(Config{Lang: "eng", PSM: 6}, nil)
	r.runner = runner

	res, err := r.Recognize(context.Background(), "/tmp/slip.png")
	require.NoError(t, err)

	assert.Equal(t, "Amount: 1,500.00 MMK\nFrom: Jane Doe", res.Text)
	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{"/tmp/slip.png", "stdout", "-l", "eng", "--psm", "6"}, runner.gotArgs)
	assert.Greater(t, res.Confidence, float32(0.5))
}

func TestRecognize_CommandFailure(t *testing.T) {
	runner := &fakeRunner{
		stderr: []byte("Error opening data file"),
		err:    errors.New("exit status 1"),
	}
	r := NewRecognizer(Config{}, nil)
	r.runner = runner

	res, err := r.Recognize(context.Background(), "/tmp/slip.png")
	require.Error(t, err)
	assert.Empty(t, res.Text)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Error opening data file")
}

func TestRecognize_NoText(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("  \n\t\n")}
	r := NewRecognizer(Config{}, nil)
	r.runner = runner

	_, err := r.Recognize(context.Background(), "/tmp/blank.png")
	assert.ErrorIs(t, err, common.ErrNoText)
}

func TestRecognize_TessdataDirFlag(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("hello")}
	r := NewRecognizer(Config{TessdataDir: "/usr/share/tessdata"}, nil)
	r.runner = runner

	_, err := r.Recognize(context.Background(), "a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "stdout", "-l", "eng", "--tessdata-dir", "/usr/share/tessdata"}, runner.gotArgs)
}

func TestHeuristicConfidence(t *testing.T) {
	assert.InDelta(t, 0.2, heuristicConfidence(""), 0.001)

	rich := "Transaction ID: TX1\nDate: 12/06/2024\nFrom: Jane Doe\nTo: John Smith\nAmount: 1,500.00 MMK"
	assert.InDelta(t, 0.95, heuristicConfidence(rich), 0.001)

	assert.Less(t, heuristicConfidence("garbled noise"), heuristicConfidence(rich))
}
