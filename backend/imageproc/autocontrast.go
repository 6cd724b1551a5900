package imageproc

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/util"
)

// ImageAutoContrast stretches the luminance histogram linearly so the
// darkest and brightest occupied bins land on 0 and 255. A non-zero
// cutoff ignores that percentage of pixels at each end first, which
// keeps single hot pixels from pinning the range.
type ImageAutoContrast struct {
	cutoffPercent float64

	apitype.ImageOperation
}

func NewImageAutoContrast(cutoffPercent float64) apitype.ImageOperation {
	return &ImageAutoContrast{cutoffPercent: cutoffPercent}
}

func (s *ImageAutoContrast) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	img := operationGroup.ImageData()
	histogram := imaging.Histogram(img)
	low, high := stretchRange(histogram, s.cutoffPercent/100)
	if high <= low {
		// Flat image, nothing to stretch.
		return nil, nil
	}

	scale := 255.0 / float64(high-low)
	stretched := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: stretchChannel(c.R, low, scale),
			G: stretchChannel(c.G, low, scale),
			B: stretchChannel(c.B, low, scale),
			A: c.A,
		}
	})
	return stretched, nil
}

func (s *ImageAutoContrast) String() string {
	return fmt.Sprintf("AutoContrast (cutoff %.1f %%)", s.cutoffPercent)
}

// stretchRange finds the occupied luminance range, skipping cutoff
// (a fraction of all pixels) from each end.
func stretchRange(histogram [256]float64, cutoff float64) (int, int) {
	low := 0
	sum := 0.0
	for ; low < 255; low++ {
		sum += histogram[low]
		if sum > cutoff {
			break
		}
	}

	high := 255
	sum = 0.0
	for ; high > 0; high-- {
		sum += histogram[high]
		if sum > cutoff {
			break
		}
	}
	return low, high
}

func stretchChannel(value uint8, low int, scale float64) uint8 {
	stretched := (float64(value) - float64(low)) * scale
	return uint8(util.Clamp(stretched, 0, 255) + 0.5)
}
