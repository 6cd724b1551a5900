package api

import (
	"image"

	"github.com/viewmark/viewmark/api/apitype"
)

type ImageProcService interface {
	Invert(imagePath string, img image.Image) (image.Image, error)
	AutoContrast(imagePath string, img image.Image) (image.Image, error)
	FalseColor(imagePath string, img image.Image) (image.Image, error)
	Apply(imagePath string, img image.Image, operations []apitype.ImageOperation) (image.Image, error)
}
