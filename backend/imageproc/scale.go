package imageproc

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/backend/zoom"
	xdraw "golang.org/x/image/draw"
)

// ScaleForZoom renders img at a zoom ratio. With a valid rational fit
// the target dimensions are exact integer products and nearest-neighbor
// keeps source pixels aligned to whole view pixels; without one the
// image is resampled at the float ratio.
func ScaleForZoom(img image.Image, fraction apitype.Rational, scale float64) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("scale for zoom without image: %w", zoom.ErrInvalidParameter)
	}
	bounds := img.Bounds()

	if fraction.IsValid() {
		width := bounds.Dx() * fraction.Numerator() / fraction.Denominator()
		height := bounds.Dy() * fraction.Numerator() / fraction.Denominator()
		dst := image.NewNRGBA(image.Rect(0, 0, maxInt(width, 1), maxInt(height, 1)))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		return dst, nil
	}

	if scale <= 0 {
		return nil, fmt.Errorf("scale for zoom at %v: %w", scale, zoom.ErrDegenerateScale)
	}
	width := uint(math.Round(float64(bounds.Dx()) * scale))
	height := uint(math.Round(float64(bounds.Dy()) * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return resize.Resize(width, height, img, resize.Lanczos3), nil
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
