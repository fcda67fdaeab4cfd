package bign

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Number is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0.
//
// A number is a struct with three parameters:
//
//   - Value: an arbitrary-precision integer holding the numeric value
//     scaled by 10^Precision. It is the single source of truth.
//   - Precision: the number of fractional digits used for all internal
//     arithmetic. It is fixed at construction and never smaller than Decimals.
//   - Decimals: the number of fractional digits of the original external
//     representation. It only matters for re-expansion to a decimal string
//     or value, never for the correctness of arithmetic.
//
// A number is immutable: every operation returns a new instance and no
// operation mutates an operand, so read-only sharing across goroutines is
// safe. Concurrent external mutation is not a supported use.
type Number struct {
	value *big.Int // the numeric value scaled by 10^prec
	prec  int      // fractional digits used for internal arithmetic
	dec   int      // fractional digits of the original representation
}

var (
	errInvalidNumber    = errors.New("invalid number")
	errNegativeDecimals = errors.New("negative decimals")
	errDivisionByZero   = errors.New("division by zero")
	errSqrtNegative     = errors.New("square root of negative number")
)

// bintZero backs the zero value of Number. Read-only.
var bintZero = (*bint)(new(big.Int))

// coef returns the scaled magnitude of n.
// The result aliases n's internals and must be treated as read-only.
func (n Number) coef() *bint {
	if n.value == nil {
		return bintZero
	}
	return (*bint)(n.value)
}

func newNumber(value *bint, decimals, prec int) Number {
	if prec < decimals {
		prec = decimals
	}
	return Number{value: (*big.Int)(value), prec: prec, dec: decimals}
}

// Parse converts a decimal string to a number, carrying the default
// context's precision internally.
// Also see method [Context.Parse].
func Parse(s string) (Number, error) {
	return DefaultContext().Parse(s)
}

// ParseExact is like [Parse], but lets you specify the number of fractional
// digits used for internal arithmetic.
// If the string carries more decimals than prec, the precision is raised to
// the number of decimals.
func ParseExact(s string, prec int) (Number, error) {
	c := DefaultContext()
	c.Precision = prec
	return c.Parse(s)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// Parse converts a decimal string to a number at c's precision.
// The input must be in one of the following formats:
//
//	1234
//	-1234
//	+123.45
//	.5
//	5.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] (digits '.' digits | '.' digits | digits '.' | digits)
//
// The number of decimals is inferred from the digit count after the point.
// Exponential notation is not supported.
func (c Context) Parse(s string) (Number, error) {
	mant := s

	// Sign
	var neg bool
	switch {
	case strings.HasPrefix(mant, "-"):
		neg = true
		mant = mant[1:]
	case strings.HasPrefix(mant, "+"):
		mant = mant[1:]
	}

	// Decimal point
	decimals := 0
	if point := strings.IndexByte(mant, '.'); point >= 0 {
		if strings.IndexByte(mant[point+1:], '.') >= 0 {
			return Number{}, fmt.Errorf("parsing %q: second decimal point: %w", s, errInvalidNumber)
		}
		decimals = len(mant) - point - 1
		mant = mant[:point] + mant[point+1:]
	}
	if mant == "" {
		return Number{}, fmt.Errorf("parsing %q: no digits: %w", s, errInvalidNumber)
	}
	for i := 0; i < len(mant); i++ {
		if mant[i] < '0' || mant[i] > '9' {
			return Number{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, mant[i], errInvalidNumber)
		}
	}

	// Magnitude
	value, ok := new(big.Int).SetString(mant, 10)
	if !ok {
		return Number{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
	}
	if neg {
		value.Neg(value)
	}
	return c.newFromBigInt(value, decimals)
}

// New returns a number equal to value / 10^decimals, carrying the default
// context's precision internally.
// Also see method [Context.New].
func New(value int64, decimals int) (Number, error) {
	return DefaultContext().New(value, decimals)
}

// NewExact is like [New], but lets you specify the number of fractional
// digits used for internal arithmetic.
func NewExact(value int64, decimals, prec int) (Number, error) {
	c := DefaultContext()
	c.Precision = prec
	return c.New(value, decimals)
}

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding numbers.
func MustNew(value int64, decimals int) Number {
	n, err := New(value, decimals)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, decimals, err))
	}
	return n
}

// New returns a number equal to value / 10^decimals at c's precision.
func (c Context) New(value int64, decimals int) (Number, error) {
	return c.newFromBigInt(big.NewInt(value), decimals)
}

// NewFromBigInt returns a number equal to value / 10^decimals, carrying the
// default context's precision internally.
// Also see method [Context.NewFromBigInt].
func NewFromBigInt(value *big.Int, decimals int) (Number, error) {
	return DefaultContext().NewFromBigInt(value, decimals)
}

// NewFromBigIntExact is like [NewFromBigInt], but lets you specify the number
// of fractional digits used for internal arithmetic.
func NewFromBigIntExact(value *big.Int, decimals, prec int) (Number, error) {
	c := DefaultContext()
	c.Precision = prec
	return c.NewFromBigInt(value, decimals)
}

// NewFromBigInt returns a number equal to value / 10^decimals at c's
// precision. The value is copied, so later mutation of the argument does not
// affect the number.
func (c Context) NewFromBigInt(value *big.Int, decimals int) (Number, error) {
	return c.newFromBigInt(value, decimals)
}

// newFromBigInt scales value from decimals up to the working precision.
// The scaling always widens, so it is lossless.
func (c Context) newFromBigInt(value *big.Int, decimals int) (Number, error) {
	if decimals < 0 {
		return Number{}, fmt.Errorf("%v decimals: %w", decimals, errNegativeDecimals)
	}
	prec := c.Precision
	if prec < decimals {
		prec = decimals
	}
	z := (*bint)(new(big.Int))
	z.lsh((*bint)(value), prec-decimals)
	return newNumber(z, decimals, prec), nil
}

// NewPrecise stores value directly as the scaled magnitude, without
// rescaling: the argument must already be expressed at the given precision,
// that is, equal to the numeric value times 10^prec.
// It is intended for importing values from another arithmetic engine.
// If prec is smaller than decimals, it is raised to decimals.
func NewPrecise(value *big.Int, decimals, prec int) (Number, error) {
	if decimals < 0 {
		return Number{}, fmt.Errorf("%v decimals: %w", decimals, errNegativeDecimals)
	}
	return newNumber((*bint)(new(big.Int).Set(value)), decimals, prec), nil
}

// MustNewPrecise is like [NewPrecise] but panics if the number cannot be
// constructed.
func MustNewPrecise(value *big.Int, decimals, prec int) Number {
	n, err := NewPrecise(value, decimals, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewPrecise(%v, %v, %v) failed: %v", value, decimals, prec, err))
	}
	return n
}

// Clone returns a deep copy of n.
// The copy shares no state with n, so mutating one can never affect the other.
func (n Number) Clone() Number {
	return Number{value: n.coef().bigInt(), prec: n.prec, dec: n.dec}
}

// Precision returns the number of fractional digits used for n's internal
// arithmetic.
func (n Number) Precision() int {
	return n.prec
}

// Decimals returns the number of fractional digits of n's original external
// representation. It determines the default formatting width of [Number.String]
// and nothing else; the value held by n may carry more fractional digits.
func (n Number) Decimals() int {
	return n.dec
}

// Precise returns a copy of the raw internal scaled integer, equal to the
// numeric value times 10^prec.
func (n Number) Precise() *big.Int {
	return n.coef().bigInt()
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	return n.coef().sign()
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return n.coef().sign() == 0
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.coef().sign() > 0
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.coef().sign() < 0
}

// Zero returns a number with a value of 0 and the same decimals and
// precision as n.
func (n Number) Zero() Number {
	return Number{value: new(big.Int), prec: n.prec, dec: n.dec}
}

// One returns a number with a value of 1 and the same decimals and
// precision as n.
func (n Number) One() Number {
	return Number{value: pow10(n.prec).bigInt(), prec: n.prec, dec: n.dec}
}

// Neg returns n with the opposite sign.
func (n Number) Neg() Number {
	z := (*bint)(new(big.Int))
	z.neg(n.coef())
	return Number{value: (*big.Int)(z), prec: n.prec, dec: n.dec}
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	z := (*bint)(new(big.Int))
	z.abs(n.coef())
	return Number{value: (*big.Int)(z), prec: n.prec, dec: n.dec}
}

// rebase returns n's scaled magnitude re-expressed at the given precision.
// Binary operations rebase both operands to their common (maximum)
// precision, so rebasing only ever widens and is lossless.
// The result is always a newly allocated value; n is never mutated.
func (n Number) rebase(prec int) *bint {
	z := (*bint)(new(big.Int))
	z.lsh(n.coef(), prec-n.prec)
	return z
}

// Add returns the sum of n and e.
// The result carries the common precision of the operands and inherits
// n's decimals.
func (n Number) Add(e Number) Number {
	prec := max(n.prec, e.prec)
	z := (*bint)(new(big.Int))
	z.add(n.rebase(prec), e.rebase(prec))
	return Number{value: (*big.Int)(z), prec: prec, dec: n.dec}
}

// Sub returns the difference of n and e.
// The result carries the common precision of the operands and inherits
// n's decimals.
func (n Number) Sub(e Number) Number {
	prec := max(n.prec, e.prec)
	z := (*bint)(new(big.Int))
	z.sub(n.rebase(prec), e.rebase(prec))
	return Number{value: (*big.Int)(z), prec: prec, dec: n.dec}
}

// Mul returns the product of n and e.
// Each operand's magnitude carries one scaling factor, so one factor is
// divided back out of the product, truncating towards zero.
func (n Number) Mul(e Number) Number {
	prec := max(n.prec, e.prec)
	z := (*bint)(new(big.Int))
	z.mul(n.rebase(prec), e.rebase(prec))
	z.quo(z, pow10(prec))
	return Number{value: (*big.Int)(z), prec: prec, dec: n.dec}
}

// Quo returns the quotient of n and e, truncated towards zero at the common
// precision. The scaling factor lost by the integer division is multiplied
// back into the dividend beforehand.
//
// Quo returns an error if e is 0.
func (n Number) Quo(e Number) (Number, error) {
	if e.IsZero() {
		return Number{}, fmt.Errorf("%s / %s: %w", n, e, errDivisionByZero)
	}
	prec := max(n.prec, e.prec)
	z := (*bint)(new(big.Int))
	z.mul(n.rebase(prec), pow10(prec))
	z.quo(z, e.rebase(prec))
	return Number{value: (*big.Int)(z), prec: prec, dec: n.dec}, nil
}

// Sqr returns the square of n.
func (n Number) Sqr() Number {
	return n.Mul(n)
}

// Sqrt returns the square root of n.
//
// The root is found by integer Newton-Raphson iteration on value * 10^prec,
// which keeps the full precision through the root. The iteration
// x' = (x + N/x) / 2 runs until it reaches a fixed point or oscillates
// between two adjacent integers, in which case the smaller one is the root.
//
// Sqrt returns an error if n is negative.
// Scaled magnitudes below 2 are returned unchanged.
func (n Number) Sqrt() (Number, error) {
	if n.IsNeg() {
		return Number{}, fmt.Errorf("%s: %w", n, errSqrtNegative)
	}
	if n.coef().cmp((*bint)(big.NewInt(2))) < 0 {
		return n.Clone(), nil
	}

	num := (*bint)(new(big.Int))
	num.mul(n.coef(), pow10(n.prec))

	// Initial guess num/2 + 1 is never below the root, so the iteration
	// decreases monotonically until it converges.
	x := (*bint)(new(big.Int))
	x.hlf(num)
	x.inc(x)

	y := (*bint)(new(big.Int))
	q := getBint()
	defer putBint(q)
	for {
		q.quo(num, x)
		y.add(x, q)
		y.hlf(y)
		if y.cmp(x) >= 0 {
			break
		}
		x, y = y, x
	}
	return Number{value: (*big.Int)(x), prec: n.prec, dec: n.dec}, nil
}

// Cmp compares n and e numerically and returns:
//
//	-1 if n < e
//	 0 if n == e
//	+1 if n > e
//
// Both operands are rebased to their common precision and the scaled
// integers are compared exactly; no rounding is applied.
func (n Number) Cmp(e Number) int {
	prec := max(n.prec, e.prec)
	return n.rebase(prec).cmp(e.rebase(prec))
}

// Equal returns true if n == e.
func (n Number) Equal(e Number) bool {
	return n.Cmp(e) == 0
}

// Less returns true if n < e.
func (n Number) Less(e Number) bool {
	return n.Cmp(e) < 0
}

// LessOrEqual returns true if n <= e.
func (n Number) LessOrEqual(e Number) bool {
	return n.Cmp(e) <= 0
}

// Greater returns true if n > e.
func (n Number) Greater(e Number) bool {
	return n.Cmp(e) > 0
}

// GreaterOrEqual returns true if n >= e.
func (n Number) GreaterOrEqual(e Number) bool {
	return n.Cmp(e) >= 0
}

// Max returns the maximum of n and e.
func (n Number) Max(e Number) Number {
	if n.Cmp(e) >= 0 {
		return n
	}
	return e
}

// Min returns the minimum of n and e.
func (n Number) Min(e Number) Number {
	if n.Cmp(e) <= 0 {
		return n
	}
	return e
}

// Decimal returns n re-expressed at the given number of fractional digits.
// Narrowing below n's precision applies the default context's rounding
// policy; widening is exact.
// Also see method [Context.Decimal].
func (n Number) Decimal(scale int) *big.Int {
	return DefaultContext().Decimal(n, scale)
}

// Decimal returns n re-expressed at the given number of fractional digits,
// rounded according to c.
func (c Context) Decimal(n Number, scale int) *big.Int {
	return (*big.Int)(c.round(n.coef(), n.prec-scale))
}

// Int returns the integer part of n, rounded according to the default
// context. It is shorthand for Decimal(0).
// Also see method [Context.Int].
func (n Number) Int() *big.Int {
	return n.Decimal(0)
}

// Int returns the integer part of n, rounded according to c.
func (c Context) Int(n Number) *big.Int {
	return c.Decimal(n, 0)
}

// Text returns n formatted as a decimal string with the given number of
// fractional digits, rounding according to the default context when
// narrowing.
// A scale of zero or less instead pads the right with that many zero digits
// and emits no decimal point.
// Also see method [Context.Text].
func (n Number) Text(scale int) string {
	return DefaultContext().Text(n, scale)
}

// Text returns n formatted as a decimal string with the given number of
// fractional digits, rounded according to c.
func (c Context) Text(n Number, scale int) string {
	s := (*bint)(c.Decimal(n, scale)).string()
	if scale <= 0 {
		return s + strings.Repeat("0", -scale)
	}
	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	// Zero-pad so the point never runs past the available digits.
	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}
	point := len(s) - scale
	s = s[:point] + "." + s[point:]
	if neg {
		s = "-" + s
	}
	return s
}

// String formats n at its original number of decimals and implements the
// [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.Text(n.dec)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = Parse(string(text))
	return err
}

// MarshalJSON implements the [json.Marshaler] interface.
// The number is marshaled as a quoted string to protect it from precision
// loss in consumers that read JSON numbers as floats.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and bare numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	var err error
	*n, err = Parse(s)
	return err
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Number) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = Parse(value)
	case []byte:
		*n, err = Parse(string(value))
	case int64:
		*n, err = New(value, 0)
	case float64:
		*n, err = Parse(strconv.FormatFloat(value, 'f', -1, 64))
	case nil:
		*n = Number{}
	default:
		err = fmt.Errorf("converting %T to %T: %w", value, n, errInvalidNumber)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}
