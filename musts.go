package bign

import "fmt"

// MustQuo is like [Number.Quo] but panics if computing error.
func (n Number) MustQuo(e Number) Number {
	f, err := n.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustSqrt is like [Number.Sqrt] but panics if computing error.
func (n Number) MustSqrt() Number {
	f, err := n.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("%v.MustSqrt() failed: %v", n, err))
	}
	return f
}
