package imageproc

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/viewmark/viewmark/api/apitype"
)

type ImageInvert struct {
	apitype.ImageOperation
}

func NewImageInvert() apitype.ImageOperation {
	return &ImageInvert{}
}

func (s *ImageInvert) Apply(operationGroup *apitype.ImageOperationGroup) (image.Image, error) {
	return imaging.Invert(operationGroup.ImageData()), nil
}

func (s *ImageInvert) String() string {
	return "Invert"
}
