package fractions

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseFraction parses a fraction literal. It accepts the canonical
// "<int>/<int>" form, a bare integer, and a plain decimal literal such as
// "-0.25", which converts exactly. Malformed input fails with an error
// wrapping ErrParse.
func ParseFraction(s string) (Fraction, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, ok := new(big.Int).SetString(s[:i], 10)
		if !ok {
			return Fraction{}, fmt.Errorf("%w: bad numerator in %q", ErrParse, s)
		}
		den, ok := new(big.Int).SetString(s[i+1:], 10)
		if !ok {
			return Fraction{}, fmt.Errorf("%w: bad denominator in %q", ErrParse, s)
		}
		if den.Sign() == 0 {
			return Fraction{}, ErrZeroDenominator
		}
		if !num.IsInt64() || !den.IsInt64() {
			return Fraction{}, ErrOverflow
		}
		return New(num.Int64(), den.Int64())
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal to the exactly equal fraction. It fails
// with ErrOverflow when the reduced numerator or denominator does not fit
// in an int64.
func FromDecimal(d decimal.Decimal) (Fraction, error) {
	return FromBigRat(d.Rat())
}

// Decimal returns a decimal approximation of x, rounded half away from
// zero at the given number of places. The result is exact only when the
// denominator has no prime factors other than 2 and 5.
func (x Fraction) Decimal(places int32) decimal.Decimal {
	return decimal.New(x.n, 0).DivRound(decimal.New(x.Den(), 0), places)
}

// FromBigRat converts a big.Rat, failing with ErrOverflow when either part
// of the reduced value does not fit in an int64.
func FromBigRat(r *big.Rat) (Fraction, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{}, ErrOverflow
	}
	return New(r.Num().Int64(), r.Denom().Int64())
}

// BigRat converts x to a new big.Rat.
func (x Fraction) BigRat() *big.Rat {
	return big.NewRat(x.n, x.Den())
}
