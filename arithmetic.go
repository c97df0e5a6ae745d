package fractions

import "math/bits"

// Add returns x + y. The cross products are computed with 128-bit
// precision and the common factor of the denominators is divided out
// before the result is checked against the 64-bit range, so Add fails with
// ErrOverflow only when the reduced result itself is unrepresentable.
func (x Fraction) Add(y Fraction) (Fraction, error) {
	return x.addsub(y, false)
}

// Sub returns x - y, with the same overflow behavior as Add.
func (x Fraction) Sub(y Fraction) (Fraction, error) {
	return x.addsub(y, true)
}

func (x Fraction) addsub(y Fraction, negate bool) (Fraction, error) {
	n1, d1 := x.Num(), x.Den()
	n2, d2 := y.Num(), y.Den()
	neg1 := n1 < 0
	neg2 := n2 < 0
	if negate {
		neg2 = !neg2
	}
	if n2 == 0 {
		return x, nil
	}
	if n1 == 0 {
		return compose(neg2, mag64(n2), uint64(d2))
	}

	h1, l1 := bits.Mul64(mag64(n1), uint64(d2))
	h2, l2 := bits.Mul64(mag64(n2), uint64(d1))

	var hi, lo uint64
	neg := neg1
	if neg1 == neg2 {
		var c uint64
		lo, c = bits.Add64(l1, l2, 0)
		hi, c = bits.Add64(h1, h2, c)
		if c != 0 {
			return Fraction{}, ErrOverflow
		}
	} else {
		if h2 > h1 || (h2 == h1 && l2 > l1) {
			h1, l1, h2, l2 = h2, l2, h1, l1
			neg = neg2
		}
		var b uint64
		lo, b = bits.Sub64(l1, l2, 0)
		hi, _ = bits.Sub64(h1, h2, b)
		if hi == 0 && lo == 0 {
			return Fraction{}, nil
		}
	}

	// g divides both cross products, so it divides their sum and
	// difference; dividing it out of the numerator and of d1*d2 leaves the
	// result over the least common multiple of the denominators.
	g := gcd(uint64(d1), uint64(d2))
	hi, lo = quo128(hi, lo, g)

	dh, dl := bits.Mul64(uint64(d1), uint64(d2))
	if dh >= g {
		return Fraction{}, ErrOverflow
	}
	den, _ := bits.Div64(dh, dl, g)

	// the numerator over the lcm may still share a factor with it
	if f := gcd(den, mod128(hi, lo, den)); f != 1 {
		hi, lo = quo128(hi, lo, f)
		den /= f
	}
	if hi != 0 {
		return Fraction{}, ErrOverflow
	}
	return compose(neg, lo, den)
}

// Mul returns x * y. Factors common to either numerator and the opposite
// denominator are cancelled before multiplying, so a representable product
// never reports a spurious overflow.
func (x Fraction) Mul(y Fraction) (Fraction, error) {
	if x.n == 0 || y.n == 0 {
		return Fraction{}, nil
	}
	neg := (x.n < 0) != (y.n < 0)
	return mulMag(neg, mag64(x.n), uint64(x.Den()), mag64(y.n), uint64(y.Den()))
}

// Div returns x / y. It fails with ErrDivisionByZero when y is zero;
// otherwise it multiplies by the reciprocal, with the denominator sign
// renormalized into the numerator.
func (x Fraction) Div(y Fraction) (Fraction, error) {
	if y.n == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if x.n == 0 {
		return Fraction{}, nil
	}
	neg := (x.n < 0) != (y.n < 0)
	return mulMag(neg, mag64(x.n), uint64(x.Den()), uint64(y.Den()), mag64(y.n))
}

// quo128 returns the 128-bit quotient of (hi:lo) / m for m > 0, assuming m
// divides the value evenly.
func quo128(hi, lo, m uint64) (uint64, uint64) {
	qlo, _ := bits.Div64(hi%m, lo, m)
	return hi / m, qlo
}

// mod128 returns (hi:lo) mod m for m > 0.
func mod128(hi, lo, m uint64) uint64 {
	_, r := bits.Div64(hi%m, lo, m)
	return r
}

func mulMag(neg bool, m1, n1, m2, n2 uint64) (Fraction, error) {
	if g := gcd(m1, n2); g != 1 {
		m1, n2 = m1/g, n2/g
	}
	if g := gcd(m2, n1); g != 1 {
		m2, n1 = m2/g, n1/g
	}

	mh, ml := bits.Mul64(m1, m2)
	if mh != 0 {
		return Fraction{}, ErrOverflow
	}
	nh, nl := bits.Mul64(n1, n2)
	if nh != 0 {
		return Fraction{}, ErrOverflow
	}
	return compose(neg, ml, nl)
}
