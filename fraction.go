// Package fractions implements exact arithmetic on common fractions,
// ie. values with an integer numerator and a strictly positive integer
// denominator. Every operation reduces its result to lowest terms with the
// sign kept in the numerator, and overflow is reported instead of wrapped.
package fractions

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

var (
	Zero Fraction
	One  = FromInt(1)
)

// Fraction is an immutable rational value with a 64-bit numerator and
// denominator. The stored denominator is biased by one so that the zero
// value of the type is the canonical zero 0/1; because every observable
// value is in lowest terms with a positive denominator, == compares
// fractions for numeric equality.
type Fraction struct {
	n int64
	d int64
}

// New constructs the canonical fraction num/den. It fails with
// ErrZeroDenominator when den is zero, and with ErrOverflow when the sign
// migration would negate math.MinInt64.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return normalize(num, den)
}

// MustNew is like New but panics on failure, for fraction literals.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns the fraction k/1.
func FromInt(k int64) Fraction {
	return Fraction{k, 0}
}

func (x Fraction) Num() int64 {
	return x.n
}

func (x Fraction) Den() int64 {
	return x.d + 1
}

// Ratio returns the canonical numerator and denominator pair.
func (x Fraction) Ratio() (int64, int64) {
	return x.n, x.d + 1
}

func (x Fraction) IsZero() bool {
	return x.n == 0
}

func (x Fraction) Sign() int {
	if x.n == 0 {
		return 0
	}
	if x.n < 0 {
		return -1
	}
	return 1
}

// IsProper reports whether the absolute value of the numerator is lower
// than the denominator.
func (x Fraction) IsProper() bool {
	return mag64(x.n) < uint64(x.Den())
}

// Neg returns -x. It fails with ErrOverflow only when the numerator is
// math.MinInt64.
func (x Fraction) Neg() (Fraction, error) {
	if x.n == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{-x.n, x.d}, nil
}

// Abs returns |x|, failing with ErrOverflow when the numerator is
// math.MinInt64.
func (x Fraction) Abs() (Fraction, error) {
	if x.n >= 0 {
		return x, nil
	}
	return x.Neg()
}

// Inv returns the reciprocal 1/x. It fails with ErrDivisionByZero when x is
// zero, and with ErrOverflow when the resulting denominator cannot be
// represented.
func (x Fraction) Inv() (Fraction, error) {
	if x.n == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return compose(x.n < 0, uint64(x.Den()), mag64(x.n))
}

// Cmp returns -1, 0 or 1 depending on whether x is lower than, equal to or
// greater than y. The cross products are compared with 128-bit precision,
// so the ordering is exact for all representable fractions.
func (x Fraction) Cmp(y Fraction) int {
	if x == y {
		return 0
	}
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	h1, l1 := bits.Mul64(mag64(x.n), uint64(y.Den()))
	h2, l2 := bits.Mul64(mag64(y.n), uint64(x.Den()))
	r := -1
	if h1 > h2 || (h1 == h2 && l1 > l2) {
		r = 1
	}
	if sx < 0 {
		r = -r
	}
	return r
}

func (x Fraction) Eq(y Fraction) bool {
	return x == y
}

func (x Fraction) Less(y Fraction) bool {
	return x.Cmp(y) < 0
}

// Int64 converts x to an integer exactly. It fails with ErrNotIntegral
// unless the denominator is one.
func (x Fraction) Int64() (int64, error) {
	if x.d != 0 {
		return 0, ErrNotIntegral
	}
	return x.n, nil
}

// Truncate returns the integer part of x, rounding toward zero.
func (x Fraction) Truncate() int64 {
	return x.n / x.Den()
}

// Float64 returns the nearest floating point approximation of x. The
// result is lossy for any fraction whose numerator needs more than 53 bits
// or whose denominator is not a power of two.
func (x Fraction) Float64() float64 {
	return float64(x.n) / float64(x.Den())
}

// String renders x in the canonical numerator/denominator form, with a
// denominator of one rendered as the bare integer.
func (x Fraction) String() string {
	if x.d == 0 {
		return strconv.FormatInt(x.n, 10)
	}
	return fmt.Sprintf("%d/%d", x.n, x.Den())
}
