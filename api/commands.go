package api

import (
	"github.com/viewmark/viewmark/api/apitype"
)

type ErrorCommand struct {
	apitype.NotThrottled

	Message string
}

type ViewOpenedCommand struct {
	apitype.NotThrottled

	ViewId    apitype.ViewId
	ImageSize apitype.Size
}

type ViewClosedCommand struct {
	apitype.NotThrottled

	ViewId apitype.ViewId
}

// ZoomChangedCommand is published after every zoom or scroll mutation.
// Repaints driven by it may be coalesced, hence throttled.
type ZoomChangedCommand struct {
	apitype.Throttled

	ViewId        apitype.ViewId
	Index         int
	Scale         float64
	Fraction      apitype.Rational
	ExactFraction bool
	ScrollOffset  apitype.Point
}

type MarksUpdatedCommand struct {
	apitype.NotThrottled

	ImagePath string
	Marks     []*apitype.Mark
	Count     int
}

type ImageProcessedCommand struct {
	apitype.NotThrottled

	ImagePath string
	Modified  bool
}

type TaskCompletedCommand struct {
	apitype.NotThrottled

	Name    string
	Result  interface{}
	Aborted bool
}
