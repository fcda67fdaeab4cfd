package bign

import (
	"math/big"
	"sync"
)

// DefaultPrecision is the number of fractional digits used for internal
// arithmetic when a constructor is not given an explicit precision.
const DefaultPrecision = 80

// RoundingMode determines the carry applied when a scaled value is narrowed
// to fewer fractional digits.
//
// Only the three modes below are supported. Other conventional modes
// (floor, ceiling, half up, half down, half to even, half to odd) are not
// provided; [RoundCustom] covers bespoke carry rules that only need the
// dropped remainder and the divisor.
type RoundingMode int

const (
	// RoundTowardZero drops the excess digits without a carry (truncation).
	RoundTowardZero RoundingMode = iota

	// RoundHalfAwayFromZero carries one unit away from zero when the dropped
	// digits are at least half of the divisor.
	RoundHalfAwayFromZero

	// RoundCustom delegates the carry decision to [Context.Round].
	RoundCustom
)

// RoundingFunc decides the carry applied after truncation when a value is
// narrowed under [RoundCustom].
// The remainder is the dropped part of the scaled value and keeps its sign;
// the divisor is the power of ten that was divided out.
// The result must be -1, 0, or +1 and is added to the truncated value.
type RoundingFunc func(remainder, divisor *big.Int) int

// Context holds the configuration read by constructors and by every
// narrowing operation.
// It is safe for concurrent use, but must not be modified concurrently.
type Context struct {
	// Precision is the number of fractional digits used for internal
	// arithmetic by numbers constructed through this context.
	// If a number is constructed with more decimals than Precision,
	// its precision is raised to the number of decimals.
	Precision int

	// Rounding selects how values are rounded when narrowed.
	Rounding RoundingMode

	// Round is consulted when Rounding is [RoundCustom].
	// A nil Round truncates.
	Round RoundingFunc
}

// BaseContext is the context used by the package-level operations until
// [SetDefaultContext] is called.
var BaseContext = Context{
	Precision: DefaultPrecision,
	Rounding:  RoundTowardZero,
}

var (
	defaultMu  sync.RWMutex
	defaultCtx = BaseContext
)

// DefaultContext returns the process-wide context read by the package-level
// constructors and by [Number] narrowing methods.
func DefaultContext() Context {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCtx
}

// SetDefaultContext replaces the process-wide context.
// The change applies to operations evaluated after the call; numbers and
// results computed earlier are never revisited.
func SetDefaultContext(c Context) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = c
}

// ResetDefaultContext restores [BaseContext] as the process-wide context.
func ResetDefaultContext() {
	SetDefaultContext(BaseContext)
}

// round calculates x / 10^shift, rounded according to c.
// A non-positive shift widens exactly.
// The result is always a newly allocated value.
func (c Context) round(x *bint, shift int) *bint {
	z := (*bint)(new(big.Int))
	if shift <= 0 {
		z.lsh(x, -shift)
		return z
	}
	r := getBint()
	defer putBint(r)
	y := pow10(shift)
	z.quoRem(x, y, r)
	switch c.carry(r, y) {
	case 1:
		z.inc(z)
	case -1:
		z.sub(z, bpow10[0])
	}
	return z
}

// carry reports the rounding adjustment for a truncated value, given the
// dropped remainder and the divisor.
func (c Context) carry(r, y *bint) int {
	switch c.Rounding {
	case RoundHalfAwayFromZero:
		if r.sign() == 0 {
			return 0
		}
		d := getBint()
		defer putBint(d)
		d.abs(r)
		d.dbl(d)
		if d.cmp(y) >= 0 {
			return r.sign()
		}
	case RoundCustom:
		if c.Round != nil {
			return c.Round(r.bigInt(), y.bigInt())
		}
	}
	return 0
}
