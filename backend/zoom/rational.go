package zoom

import (
	"fmt"
	"math"

	"github.com/viewmark/viewmark/api/apitype"
)

// DenominatorStep returns the divisibility constraint for rational fits
// in the given magnification band. Ratios at or below 1:2 need
// denominators divisible by 2 and ratios at or below 1:4 divisible
// by 4, so that half- and quarter-scale resampling arithmetic stays
// integer exact.
func DenominatorStep(target float64) int {
	switch {
	case target > 0.5:
		return 1
	case target > 0.25:
		return 2
	default:
		return 4
	}
}

// NearestRational finds the fraction closest to target on the bounded
// numerator x denominator grid. Numerators run 1..maxNumerator and
// denominators denomStep..maxDenominator*denomStep in steps of
// denomStep. Ties break to the smaller denominator, then the smaller
// numerator. A positive maxRelError rejects results whose relative
// error exceeds it; zero or less accepts any best match.
//
// The grid is tens of entries per side, so the exhaustive search is
// cheap and trivially deterministic.
func NearestRational(target float64, maxNumerator int, maxDenominator int, denomStep int, maxRelError float64) (apitype.Rational, float64, error) {
	if target <= 0 || maxNumerator < 1 || maxDenominator < 1 || denomStep < 1 {
		return apitype.Rational{}, 0, fmt.Errorf("nearest rational for %v (max %d/%d): %w",
			target, maxNumerator, maxDenominator, ErrInvalidParameter)
	}

	best := apitype.Rational{}
	bestError := math.MaxFloat64
	for denominator := denomStep; denominator <= maxDenominator*denomStep; denominator += denomStep {
		for numerator := 1; numerator <= maxNumerator; numerator++ {
			err := math.Abs(float64(numerator)/float64(denominator) - target)
			if err < bestError {
				bestError = err
				best = apitype.RationalOf(numerator, denominator)
			}
		}
	}

	if maxRelError > 0 && bestError/target > maxRelError {
		return apitype.Rational{}, bestError, fmt.Errorf("nearest rational for %v: %w", target, ErrNoRationalFound)
	}
	return best, bestError, nil
}

// LowestRational finds the first fraction within maxRelError relative
// error of target, scanning denominators then numerators in ascending
// order, so the match with the smallest denominator and numerator wins
// over closer but larger pairs.
func LowestRational(target float64, maxNumerator int, maxDenominator int, denomStep int, maxRelError float64) (apitype.Rational, float64, error) {
	if target <= 0 || maxNumerator < 1 || maxDenominator < 1 || denomStep < 1 || maxRelError <= 0 {
		return apitype.Rational{}, 0, fmt.Errorf("lowest rational for %v (max %d/%d): %w",
			target, maxNumerator, maxDenominator, ErrInvalidParameter)
	}

	for denominator := denomStep; denominator <= maxDenominator*denomStep; denominator += denomStep {
		for numerator := 1; numerator <= maxNumerator; numerator++ {
			relError := math.Abs(float64(numerator)/float64(denominator)-target) / target
			if relError < maxRelError {
				return apitype.RationalOf(numerator, denominator), relError, nil
			}
		}
	}
	return apitype.Rational{}, 0, fmt.Errorf("lowest rational for %v: %w", target, ErrNoRationalFound)
}
