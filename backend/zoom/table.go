package zoom

import (
	"fmt"
	"math"

	"github.com/viewmark/viewmark/api/apitype"
)

// fitSlack absorbs floating-point noise when comparing a level against
// a fit ratio that should match it exactly.
const fitSlack = 1e-9

type Options struct {
	// Step is the ratio between adjacent zoom levels. Must be > 1.0.
	Step float64
	// HalfCount is the number of levels on each side of 100 %.
	HalfCount int
	// ErrorTol is the maximum relative error for the derived rational
	// approximations. Zero disables them. Must stay below Step-1 or
	// neighboring fits could cross and break monotonicity.
	ErrorTol       float64
	MaxNumerator   int
	MaxDenominator int
}

// DefaultOptions matches the historical application coefficients:
// 69 levels of 1.1 magnification steps centered on 100 %.
func DefaultOptions() Options {
	return Options{
		Step:           1.1,
		HalfCount:      34,
		ErrorTol:       0.011,
		MaxNumerator:   64,
		MaxDenominator: 64,
	}
}

// Table is the immutable ordered list of admissible zoom ratios: a
// strictly increasing geometric progression, symmetric in log space
// around an exact 1.0 center entry. Each level optionally carries a
// best-fit small-integer fraction for exact-pixel resampling.
type Table struct {
	levels    []float64
	fractions []apitype.Rational
	halfCount int
}

func NewTable(options Options) (*Table, error) {
	if options.Step <= 1.0 {
		return nil, fmt.Errorf("step %v must be greater than 1.0: %w", options.Step, ErrInvalidParameter)
	}
	if options.HalfCount < 0 {
		return nil, fmt.Errorf("half count %d must not be negative: %w", options.HalfCount, ErrInvalidParameter)
	}
	if options.ErrorTol > 0 && options.ErrorTol >= options.Step-1 {
		return nil, fmt.Errorf("error tolerance %v must stay below step-1: %w", options.ErrorTol, ErrInvalidParameter)
	}
	if options.ErrorTol > 0 && (options.MaxNumerator < 1 || options.MaxDenominator < 1) {
		return nil, fmt.Errorf("rational bounds %d/%d must be positive: %w",
			options.MaxNumerator, options.MaxDenominator, ErrInvalidParameter)
	}

	count := 2*options.HalfCount + 1
	levels := make([]float64, count)
	for k := -options.HalfCount; k <= options.HalfCount; k++ {
		levels[options.HalfCount+k] = math.Pow(options.Step, float64(k))
	}
	// Set by hand so no floating-point shenanigans can make the center
	// anything but exactly 1.0.
	levels[options.HalfCount] = 1.0

	table := &Table{
		levels:    levels,
		halfCount: options.HalfCount,
	}
	if options.ErrorTol > 0 {
		table.fractions = make([]apitype.Rational, count)
		for i, level := range levels {
			fraction, _, err := LowestRational(
				level,
				options.MaxNumerator,
				options.MaxDenominator,
				DenominatorStep(level),
				options.ErrorTol,
			)
			if err != nil {
				// Recoverable: this level just renders at the float ratio.
				continue
			}
			table.fractions[i] = fraction
		}
	}
	return table, nil
}

func (s *Table) Count() int {
	return len(s.levels)
}

func (s *Table) Level(index int) float64 {
	return s.levels[index]
}

func (s *Table) Levels() []float64 {
	levels := make([]float64, len(s.levels))
	copy(levels, s.levels)
	return levels
}

// Fraction returns the rational approximation for the level at index,
// and whether one exists within the configured tolerance.
func (s *Table) Fraction(index int) (apitype.Rational, bool) {
	if s.fractions == nil || !s.fractions[index].IsValid() {
		return apitype.Rational{}, false
	}
	return s.fractions[index], true
}

// UnityIndex is the index of the exact 1.0 entry.
func (s *Table) UnityIndex() int {
	return s.halfCount
}

// NearestIndex returns the index of the level closest to target.
// Equidistant targets resolve to the larger ratio.
func (s *Table) NearestIndex(target float64) int {
	nearest := 0
	nearestDistance := math.Abs(s.levels[0] - target)
	for i := 1; i < len(s.levels); i++ {
		distance := math.Abs(s.levels[i] - target)
		if distance <= nearestDistance {
			nearest = i
			nearestDistance = distance
		}
	}
	return nearest
}

// FloorIndex returns the index of the largest level not exceeding max.
// When every level is larger, the smallest level wins so "zoom to fit"
// on a huge image still lands somewhere sensible.
func (s *Table) FloorIndex(max float64) int {
	floor := 0
	for i, level := range s.levels {
		if level <= max+fitSlack {
			floor = i
		}
	}
	return floor
}
