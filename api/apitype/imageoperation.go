package apitype

import (
	"image"

	"github.com/viewmark/viewmark/common/logger"
)

type ImageOperation interface {
	Apply(operationGroup *ImageOperationGroup) (image.Image, error)
	String() string
}

type ImageOperationGroup struct {
	imagePath       string
	imageData       image.Image
	hasBeenModified bool
	operations      []ImageOperation
}

func NewImageOperationGroup(imagePath string, imageData image.Image, operations []ImageOperation) *ImageOperationGroup {
	return &ImageOperationGroup{
		imagePath:       imagePath,
		imageData:       imageData,
		hasBeenModified: false,
		operations:      operations,
	}
}

func (s *ImageOperationGroup) ImagePath() string {
	return s.imagePath
}

func (s *ImageOperationGroup) ImageData() image.Image {
	return s.imageData
}

func (s *ImageOperationGroup) Modified() bool {
	return s.hasBeenModified
}

func (s *ImageOperationGroup) Operations() []ImageOperation {
	return s.operations
}

func (s *ImageOperationGroup) SetModified() {
	s.hasBeenModified = true
}

func (s *ImageOperationGroup) Apply() error {
	for _, operation := range s.operations {
		logger.Debug.Printf("Applying: '%s'", operation)
		imageData, err := operation.Apply(s)
		if err != nil {
			return err
		}
		if imageData != nil {
			s.imageData = imageData
			s.SetModified()
		}
	}
	return nil
}
