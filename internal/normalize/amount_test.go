package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_StripsCurrencyAndGrouping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"grouped with currency", "1,500.00 MMK", "1500.00"},
		{"ks suffix", "250.00 Ks", "250.00"},
		{"kyat suffix", "3,000 Kyat", "3000"},
		{"em dash negative", "—1,234.50 MMK", "-1234.50"},
		{"en dash negative", "–250.00", "-250.00"},
		{"plain minus", "-250.00 Ks", "-250.00"},
		{"sign separated by space", "— 250.00", "-250.00"},
		{"ungrouped run", "50000 Ks", "50000"},
		{"no currency", "1,500.00", "1500.00"},
		{"surrounding noise", "  1,500.00 MMK  ", "1500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.in))
		})
	}
}

// For any input matching the slip amount grammar, the normalized form parses
// to the same numeric magnitude with sign preserved.
func TestAmount_NumericRoundTrip(t *testing.T) {
	cases := map[string]string{
		"—1,234.50 MMK": "-1234.5",
		"1,500.00 MMK":  "1500",
		"-42.00":        "-42",
		"999 Ks":        "999",
	}
	for in, magnitude := range cases {
		d, err := decimal.NewFromString(Amount(in))
		require.NoError(t, err, "input %q", in)
		assert.True(t, d.Equal(decimal.RequireFromString(magnitude)),
			"input %q: got %s want %s", in, d, magnitude)
	}
}

func TestAmount_NoNumericContent(t *testing.T) {
	// graceful degradation: the trimmed input comes back unchanged
	assert.Equal(t, "pending", Amount("  pending "))
	assert.Equal(t, "", Amount("   "))
}
