package bign

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromBigDecimal(t *testing.T) {
	tests := []struct {
		input    string
		decimals int
		want     string
	}{
		{"123.45", 2, "123.45"},
		{"-123.45", 2, "-123.45"},
		{"0", 0, "0"},
		{"0.001", 3, "0.001"},
		{"1.5000", 4, "1.5000"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.input)
		got, err := NewFromBigDecimal(d)
		require.NoError(t, err)
		assert.Equal(t, tt.decimals, got.Decimals(), "decimals of %q", tt.input)
		assert.Equal(t, tt.want, got.String(), "value of %q", tt.input)
	}
}

// A positive exponent is a whole multiple of ten and carries no fractional
// digits.
func TestNewFromBigDecimal_PositiveExponent(t *testing.T) {
	got, err := NewFromBigDecimal(decimal.New(5, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Decimals())
	assert.Equal(t, "5000", got.String())
}

func TestNewFromBigDecimalExact(t *testing.T) {
	got, err := NewFromBigDecimalExact(decimal.RequireFromString("1.5"), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Precision())
	assert.Zero(t, got.Precise().Cmp(big.NewInt(15000000000)))
}

func TestNumber_BigDecimal(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123.45", "-0.001", "23.45000"} {
		n := MustParse(s)
		d := n.BigDecimal()
		assert.True(t, d.Equal(decimal.RequireFromString(s)), "BigDecimal of %q = %q", s, d)
	}
}

// Exporting to the external engine and importing back must preserve the
// value exactly.
func TestNumber_BigDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"100.00", "-1234.5", "0.00000000000000000000000000000000000000001"} {
		n := MustParse(s)
		back, err := NewFromBigDecimal(n.BigDecimal())
		require.NoError(t, err)
		assert.True(t, back.Equal(n), "round trip of %q = %q", s, back)
	}
}
