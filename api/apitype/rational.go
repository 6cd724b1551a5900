package apitype

import (
	"fmt"
)

// Rational is a small-integer fraction approximating a zoom ratio.
// The numerator counts view pixels, the denominator image pixels.
// The zero value means "no rational approximation available".
type Rational struct {
	numerator   int
	denominator int
}

func RationalOf(numerator int, denominator int) Rational {
	return Rational{numerator: numerator, denominator: denominator}
}

func (s Rational) Numerator() int {
	return s.numerator
}

func (s Rational) Denominator() int {
	return s.denominator
}

func (s Rational) IsValid() bool {
	return s.numerator > 0 && s.denominator > 0
}

func (s Rational) Value() float64 {
	return float64(s.numerator) / float64(s.denominator)
}

func (s Rational) String() string {
	return fmt.Sprintf("%d/%d", s.numerator, s.denominator)
}
