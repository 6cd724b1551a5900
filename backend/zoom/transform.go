package zoom

import (
	"fmt"

	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/util"
)

// ImageToView converts an image coordinate to a view coordinate:
// view = (image - scrollOffset) * scale.
func ImageToView(point apitype.Point, scale float64, scrollOffset apitype.Point) apitype.Point {
	return point.Sub(scrollOffset).Mul(scale)
}

// ViewToImage converts a view coordinate back to an image coordinate:
// image = view/scale + scrollOffset.
func ViewToImage(point apitype.Point, scale float64, scrollOffset apitype.Point) (apitype.Point, error) {
	if scale <= 0 {
		return apitype.Point{}, fmt.Errorf("view to image with scale %v: %w", scale, ErrDegenerateScale)
	}
	return point.Div(scale).Add(scrollOffset), nil
}

// ClampScrollOffset forces the desired top-left visible image pixel
// into range: zero on any axis where the scaled image fits inside the
// viewport (the renderer centers it there), otherwise clamped so the
// visible region stays within the image. Pure function, no hidden
// state.
func ClampScrollOffset(imageSize apitype.Size, viewportSize apitype.Size, scale float64, desired apitype.Point) (apitype.Point, error) {
	if scale <= 0 {
		return apitype.Point{}, fmt.Errorf("clamp scroll offset with scale %v: %w", scale, ErrDegenerateScale)
	}
	return apitype.PointOf(
		clampScrollAxis(imageSize.Width(), viewportSize.Width(), scale, desired.X()),
		clampScrollAxis(imageSize.Height(), viewportSize.Height(), scale, desired.Y()),
	), nil
}

func clampScrollAxis(imagePx int, viewportPx int, scale float64, desired float64) float64 {
	visible := float64(viewportPx) / scale
	if visible >= float64(imagePx) {
		return 0
	}
	return util.Clamp(desired, 0, float64(imagePx)-visible)
}

// ViewTranslation reports the letterbox padding in view pixels on each
// axis where the scaled image is smaller than the viewport. The engine
// reports the translation; drawing the padding is the renderer's job.
func ViewTranslation(imageSize apitype.Size, viewportSize apitype.Size, scale float64) apitype.Point {
	return apitype.PointOf(
		translationAxis(imageSize.Width(), viewportSize.Width(), scale),
		translationAxis(imageSize.Height(), viewportSize.Height(), scale),
	)
}

func translationAxis(imagePx int, viewportPx int, scale float64) float64 {
	scaled := float64(imagePx) * scale
	if scaled >= float64(viewportPx) {
		return 0
	}
	return (float64(viewportPx) - scaled) / 2
}

// CenterLimits returns the range of image coordinates that may lie at
// the viewport center for the given scale. Axes where the whole image
// fits collapse to the image midpoint.
func CenterLimits(imageSize apitype.Size, viewportSize apitype.Size, scale float64) (apitype.Point, apitype.Point, error) {
	if scale <= 0 {
		return apitype.Point{}, apitype.Point{}, fmt.Errorf("center limits with scale %v: %w", scale, ErrDegenerateScale)
	}
	minX, maxX := centerLimitAxis(imageSize.Width(), viewportSize.Width(), scale)
	minY, maxY := centerLimitAxis(imageSize.Height(), viewportSize.Height(), scale)
	return apitype.PointOf(minX, minY), apitype.PointOf(maxX, maxY), nil
}

func centerLimitAxis(imagePx int, viewportPx int, scale float64) (float64, float64) {
	visible := float64(viewportPx) / scale
	if visible > float64(imagePx) {
		center := float64(imagePx) / 2
		return center, center
	}
	return visible / 2, float64(imagePx) - visible/2
}
