package zoom

import (
	"fmt"
	"math"

	"github.com/viewmark/viewmark/api/apitype"
)

// Viewport is the geometry the canvas reports on every recomputation:
// its own pixel size, the image pixel size, and the scroll offset as
// the top-left visible image pixel in image coordinates.
type Viewport struct {
	imageSize    apitype.Size
	viewportSize apitype.Size
	scrollOffset apitype.Point
}

func NewViewport(imageSize apitype.Size, viewportSize apitype.Size) *Viewport {
	return &Viewport{
		imageSize:    imageSize,
		viewportSize: viewportSize,
	}
}

func (s *Viewport) ImageSize() apitype.Size {
	return s.imageSize
}

func (s *Viewport) ViewportSize() apitype.Size {
	return s.viewportSize
}

func (s *Viewport) ScrollOffset() apitype.Point {
	return s.scrollOffset
}

func (s *Viewport) SetViewportSize(size apitype.Size) {
	s.viewportSize = size
}

// SetScrollOffset stores the desired offset after clamping it for the
// given scale.
func (s *Viewport) SetScrollOffset(offset apitype.Point, scale float64) error {
	clamped, err := ClampScrollOffset(s.imageSize, s.viewportSize, scale, offset)
	if err != nil {
		return err
	}
	s.scrollOffset = clamped
	return nil
}

// FitRatio is the zoom ratio at which the larger image dimension
// exactly matches the corresponding viewport dimension.
func (s *Viewport) FitRatio() (float64, error) {
	if !s.imageSize.IsValid() || !s.viewportSize.IsValid() {
		return 0, fmt.Errorf("fit ratio for image %dx%d in viewport %dx%d: %w",
			s.imageSize.Width(), s.imageSize.Height(),
			s.viewportSize.Width(), s.viewportSize.Height(), ErrInvalidParameter)
	}
	return math.Min(
		float64(s.viewportSize.Width())/float64(s.imageSize.Width()),
		float64(s.viewportSize.Height())/float64(s.imageSize.Height()),
	), nil
}
