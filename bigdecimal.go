package bign

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NewFromBigDecimal converts a [decimal.Decimal] to a number, carrying the
// default context's precision internally.
// Also see method [Context.NewFromBigDecimal].
func NewFromBigDecimal(d decimal.Decimal) (Number, error) {
	return DefaultContext().NewFromBigDecimal(d)
}

// NewFromBigDecimalExact is like [NewFromBigDecimal], but lets you specify
// the number of fractional digits used for internal arithmetic.
func NewFromBigDecimalExact(d decimal.Decimal, prec int) (Number, error) {
	c := DefaultContext()
	c.Precision = prec
	return c.NewFromBigDecimal(d)
}

// NewFromBigDecimal converts a [decimal.Decimal] to a number at c's
// precision. The conversion is exact: the decimals are taken from d's
// exponent, whole multiples of ten carry no fractional digits.
func (c Context) NewFromBigDecimal(d decimal.Decimal) (Number, error) {
	exp := int(d.Exponent())
	if exp >= 0 {
		z := (*bint)(new(big.Int))
		z.lsh((*bint)(d.Coefficient()), exp)
		return c.newFromBigInt((*big.Int)(z), 0)
	}
	return c.newFromBigInt(d.Coefficient(), -exp)
}

// BigDecimal returns n as a [decimal.Decimal] carrying the full internal
// precision of n.
func (n Number) BigDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(n.Precise(), -int32(n.prec))
}
