package fractions

import "math"

// normalize reduces num/den to canonical form, migrating the sign of the
// denominator into the numerator. den must not be zero.
func normalize(num, den int64) (Fraction, error) {
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return Fraction{}, ErrOverflow
		}
		num, den = -num, -den
	}
	if num == 0 {
		return Fraction{}, nil
	}
	g := int64(gcd(mag64(num), uint64(den)))
	return Fraction{num / g, den/g - 1}, nil
}

// compose builds a canonical fraction from a sign and unsigned magnitudes.
// The magnitudes need not be in lowest terms, but den must not be zero.
func compose(neg bool, num, den uint64) (Fraction, error) {
	if num == 0 {
		return Fraction{}, nil
	}
	g := gcd(num, den)
	num, den = num/g, den/g
	if den > math.MaxInt64 {
		return Fraction{}, ErrOverflow
	}
	if neg {
		if num > 1<<63 {
			return Fraction{}, ErrOverflow
		}
		return Fraction{-int64(num), int64(den) - 1}, nil
	}
	if num > math.MaxInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{int64(num), int64(den) - 1}, nil
}

// gcd computes the greatest common divisor of a and b by repeated
// remainder. gcd(a, 0) == a.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mag64 returns |x| as a uint64, exact even for math.MinInt64.
func mag64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}
