package imageproc

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/viewmark/viewmark/api/apitype"
)

// ImageFalseColor maps image luminance through the viridis colormap,
// making faint intensity differences easier to tell apart when
// counting.
type ImageFalseColor struct {
	apitype.ImageOperation
}

func NewImageFalseColor() apitype.ImageOperation {
	return &ImageFalseColor{}
}

func (s *ImageFalseColor) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	gray := imaging.Grayscale(operationGroup.ImageData())
	mapped := imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		// Grayscale input, so R carries the luminance.
		entry := viridis[c.R]
		return color.NRGBA{R: entry[0], G: entry[1], B: entry[2], A: c.A}
	})
	return mapped, nil
}

func (s *ImageFalseColor) String() string {
	return "FalseColor"
}
