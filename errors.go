package fractions

import "errors"

var (
	ErrZeroDenominator = errors.New("fractions: fraction cannot have a zero denominator")
	ErrDivisionByZero  = errors.New("fractions: division by zero")
	ErrOverflow        = errors.New("fractions: integer overflow")
	ErrNotIntegral     = errors.New("fractions: not an integral value")
	ErrParse           = errors.New("fractions: invalid fraction literal")
)
