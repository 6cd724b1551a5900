package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenominatorStep(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name   string
		target float64
		step   int
	}{
		{name: "Upscale", target: 2.0, step: 1},
		{name: "Mild downscale", target: 0.6, step: 1},
		{name: "Half band boundary", target: 0.5, step: 2},
		{name: "Half band", target: 0.3, step: 2},
		{name: "Quarter band boundary", target: 0.25, step: 4},
		{name: "Deep downscale", target: 0.05, step: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Equal(tt.step, DenominatorStep(tt.target))
		})
	}
}

func TestNearestRational(t *testing.T) {
	a := assert.New(t)

	t.Run("Example from small grid", func(t *testing.T) {
		fraction, absError, err := NearestRational(0.8264, 10, 10, 1, 0)
		a.NoError(err)
		a.Equal(5, fraction.Numerator())
		a.Equal(6, fraction.Denominator())
		a.InDelta(0.0069, absError, 0.0005)
	})
	t.Run("Exact target", func(t *testing.T) {
		fraction, absError, err := NearestRational(0.5, 8, 8, 1, 0)
		a.NoError(err)
		a.Equal(1, fraction.Numerator())
		a.Equal(2, fraction.Denominator())
		a.Equal(0.0, absError)
	})
	t.Run("Tie breaks to smaller denominator then numerator", func(t *testing.T) {
		// 3/4 and 6/8 both hit 0.75 exactly.
		fraction, _, err := NearestRational(0.75, 8, 8, 1, 0)
		a.NoError(err)
		a.Equal(3, fraction.Numerator())
		a.Equal(4, fraction.Denominator())
	})
	t.Run("Denominator constraint honored", func(t *testing.T) {
		fraction, _, err := NearestRational(0.3, 16, 16, 2, 0)
		a.NoError(err)
		a.Equal(0, fraction.Denominator()%2)
	})
	t.Run("Tolerance exceeded", func(t *testing.T) {
		_, _, err := NearestRational(0.0001, 4, 4, 1, 0.5)
		a.ErrorIs(err, ErrNoRationalFound)
	})
	t.Run("Invalid target", func(t *testing.T) {
		_, _, err := NearestRational(-1.0, 10, 10, 1, 0)
		a.ErrorIs(err, ErrInvalidParameter)
	})
	t.Run("Invalid bounds", func(t *testing.T) {
		_, _, err := NearestRational(1.0, 0, 10, 1, 0)
		a.ErrorIs(err, ErrInvalidParameter)
	})
}

func TestLowestRational(t *testing.T) {
	a := assert.New(t)

	t.Run("Unity", func(t *testing.T) {
		fraction, _, err := LowestRational(1.0, 64, 64, 1, 0.011)
		a.NoError(err)
		a.Equal(1, fraction.Numerator())
		a.Equal(1, fraction.Denominator())
	})
	t.Run("Smallest historical level", func(t *testing.T) {
		// 1.1^-34 with quarter-exact denominators.
		fraction, _, err := LowestRational(0.03914, 64, 64, 4, 0.011)
		a.NoError(err)
		a.Equal(3, fraction.Numerator())
		a.Equal(76, fraction.Denominator())
	})
	t.Run("Prefers lower pair over closer fit", func(t *testing.T) {
		// Both 9/10 and 10/11 fit 0.909 within 2 %; the smaller
		// denominator wins even though 10/11 is closer.
		fraction, _, err := LowestRational(0.909, 64, 64, 1, 0.02)
		a.NoError(err)
		a.Equal(9, fraction.Numerator())
		a.Equal(10, fraction.Denominator())
	})
	t.Run("No rational within tight tolerance", func(t *testing.T) {
		_, _, err := LowestRational(0.03914, 8, 8, 4, 0.0001)
		a.ErrorIs(err, ErrNoRationalFound)
	})
	t.Run("Invalid tolerance", func(t *testing.T) {
		_, _, err := LowestRational(1.0, 10, 10, 1, 0)
		a.ErrorIs(err, ErrInvalidParameter)
	})
}
