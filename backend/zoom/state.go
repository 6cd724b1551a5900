package zoom

import (
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/util"
)

// State is the current position in a zoom table. One instance per open
// view, created at 100 % and mutated only through the operations below.
// Not safe for concurrent use; a view is owned by a single goroutine.
type State struct {
	table *Table
	index int
}

func NewState(table *Table) *State {
	return &State{
		table: table,
		index: table.UnityIndex(),
	}
}

func (s *State) Table() *Table {
	return s.table
}

func (s *State) Index() int {
	return s.index
}

func (s *State) Scale() float64 {
	return s.table.Level(s.index)
}

func (s *State) Fraction() (apitype.Rational, bool) {
	return s.table.Fraction(s.index)
}

func (s *State) AtMax() bool {
	return s.index == s.table.Count()-1
}

func (s *State) AtMin() bool {
	return s.index == 0
}

// ZoomIn moves one level up. Returns false at the top so the UI can
// observe the no-op and disable its control.
func (s *State) ZoomIn() bool {
	return s.ZoomBy(1)
}

// ZoomOut moves one level down. No-op at the bottom.
func (s *State) ZoomOut() bool {
	return s.ZoomBy(-1)
}

// ZoomBy moves several levels at once, clamped to the table ends.
// The temporary magnifier zoom uses +-10.
func (s *State) ZoomBy(steps int) bool {
	if steps == 0 {
		return false
	}
	if steps > 0 && s.AtMax() {
		return false
	}
	if steps < 0 && s.AtMin() {
		return false
	}
	s.index = util.ClampInt(s.index+steps, 0, s.table.Count()-1)
	return true
}

// ZoomToRatio jumps to the level nearest to target, ties toward the
// larger ratio. Targets outside the table clamp to its ends.
func (s *State) ZoomToRatio(target float64) {
	s.index = s.table.NearestIndex(target)
}

// Reset returns to the exact 100 % level.
func (s *State) Reset() {
	s.index = s.table.UnityIndex()
}
