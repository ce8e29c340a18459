package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf to lf", "Amount: 100\r\nFrom: Alice\r\n", "Amount: 100\nFrom: Alice"},
		{"tabs and runs of spaces", "Amount:\t\t100   MMK", "Amount: 100 MMK"},
		{"box noise lines dropped", "From: Alice\n-----\nTo: Bob", "From: Alice\n\nTo: Bob"},
		{"blank runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed", "From: Alice   \nTo: Bob  ", "From: Alice\nTo: Bob"},
		{"line breaks preserved", "Date: 12/06/2024\nAmount: 1,500.00", "Date: 12/06/2024\nAmount: 1,500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cleanup(tt.in))
		})
	}
}
