package fractions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionArithmetic(t *testing.T) {
	assert := assert.New(t)

	s, err := MustNew(1, 2).Add(MustNew(1, 3))
	assert.Nil(err)
	assert.Equal(MustNew(5, 6), s)

	s, err = MustNew(1, 6).Add(MustNew(1, 10))
	assert.Nil(err)
	assert.Equal(MustNew(4, 15), s)

	s, err = MustNew(1, 2).Sub(MustNew(1, 3))
	assert.Nil(err)
	assert.Equal(MustNew(1, 6), s)

	s, err = MustNew(1, 3).Sub(MustNew(1, 2))
	assert.Nil(err)
	assert.Equal(MustNew(-1, 6), s)

	s, err = MustNew(1, 2).Sub(MustNew(1, 2))
	assert.Nil(err)
	assert.Equal(Zero, s)

	s, err = MustNew(3, 4).Mul(MustNew(2, 3))
	assert.Nil(err)
	assert.Equal(MustNew(1, 2), s)

	s, err = MustNew(-3, 4).Mul(MustNew(2, 3))
	assert.Nil(err)
	assert.Equal(MustNew(-1, 2), s)

	s, err = MustNew(-3, 4).Mul(MustNew(-2, 3))
	assert.Nil(err)
	assert.Equal(MustNew(1, 2), s)

	s, err = MustNew(1, 2).Div(MustNew(1, 2))
	assert.Nil(err)
	assert.Equal(One, s)

	s, err = MustNew(1, 2).Div(MustNew(-3, 4))
	assert.Nil(err)
	assert.Equal(MustNew(-2, 3), s)

	s, err = Zero.Div(MustNew(3, 4))
	assert.Nil(err)
	assert.Equal(Zero, s)

	_, err = One.Div(MustNew(0, 5))
	assert.ErrorIs(err, ErrDivisionByZero)

	s, err = Zero.Add(MustNew(-7, 9))
	assert.Nil(err)
	assert.Equal(MustNew(-7, 9), s)

	s, err = Zero.Sub(MustNew(-7, 9))
	assert.Nil(err)
	assert.Equal(MustNew(7, 9), s)
}

func TestFractionOverflow(t *testing.T) {
	assert := assert.New(t)

	max := FromInt(math.MaxInt64)
	min := FromInt(math.MinInt64)

	_, err := max.Add(One)
	assert.ErrorIs(err, ErrOverflow)
	_, err = min.Sub(One)
	assert.ErrorIs(err, ErrOverflow)
	_, err = max.Mul(FromInt(2))
	assert.ErrorIs(err, ErrOverflow)
	_, err = min.Add(min)
	assert.ErrorIs(err, ErrOverflow)
	_, err = One.Div(min)
	assert.ErrorIs(err, ErrOverflow)
	_, err = Zero.Sub(min)
	assert.ErrorIs(err, ErrOverflow)

	// widened intermediates keep representable results representable
	s, err := max.Add(min)
	assert.Nil(err)
	assert.Equal(FromInt(-1), s)

	s, err = MustNew(2, math.MaxInt64).Add(MustNew(1, math.MaxInt64))
	assert.Nil(err)
	assert.Equal(MustNew(3, math.MaxInt64), s)

	s, err = MustNew(math.MaxInt64, 2).Mul(MustNew(2, math.MaxInt64))
	assert.Nil(err)
	assert.Equal(One, s)

	s, err = MustNew(math.MaxInt64, 3).Div(MustNew(math.MaxInt64, 6))
	assert.Nil(err)
	assert.Equal(FromInt(2), s)

	// no 64-bit denominator exists for this sum
	_, err = MustNew(1, math.MaxInt64).Add(MustNew(1, math.MaxInt64-1))
	assert.ErrorIs(err, ErrOverflow)
}
