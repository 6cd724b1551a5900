package api

import (
	"github.com/viewmark/viewmark/api/apitype"
)

// ZoomService owns the per-view zoom state. One view per open image;
// callers must access a given view from a single goroutine.
type ZoomService interface {
	OpenView(imageSize apitype.Size, viewportSize apitype.Size) apitype.ViewId
	CloseView(viewId apitype.ViewId)

	Scale(viewId apitype.ViewId) float64
	Index(viewId apitype.ViewId) int
	ScrollOffset(viewId apitype.ViewId) apitype.Point
	Fraction(viewId apitype.ViewId) (apitype.Rational, bool)
	CanZoomIn(viewId apitype.ViewId) bool
	CanZoomOut(viewId apitype.ViewId) bool

	ZoomIn(viewId apitype.ViewId)
	ZoomOut(viewId apitype.ViewId)
	ZoomBy(viewId apitype.ViewId, steps int)
	ZoomToRatio(viewId apitype.ViewId, target float64)
	ZoomToFit(viewId apitype.ViewId)
	ZoomReset(viewId apitype.ViewId)

	Resize(viewId apitype.ViewId, viewportSize apitype.Size)
	ScrollTo(viewId apitype.ViewId, offset apitype.Point)

	ImageToView(viewId apitype.ViewId, point apitype.Point) apitype.Point
	ViewToImage(viewId apitype.ViewId, point apitype.Point) (apitype.Point, error)
}
