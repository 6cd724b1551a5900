package imageproc

import (
	"image"

	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/logger"
)

// Service applies processing operations to a loaded image and tells
// listeners when one finished.
type Service struct {
	sender api.Sender

	api.ImageProcService
}

func NewService(sender api.Sender) *Service {
	return &Service{sender: sender}
}

func (s *Service) Apply(imagePath string, img image.Image, operations []apitype.ImageOperation) (image.Image, error) {
	operationGroup := apitype.NewImageOperationGroup(imagePath, img, operations)
	if err := operationGroup.Apply(); err != nil {
		if s.sender != nil {
			s.sender.SendError("Could not process image", err)
		}
		return nil, err
	}

	logger.Debug.Printf("Processed '%s' with %d operations", imagePath, len(operations))
	if s.sender != nil {
		s.sender.SendCommandToTopic(api.ImageProcessed, &api.ImageProcessedCommand{
			ImagePath: imagePath,
			Modified:  operationGroup.Modified(),
		})
	}
	return operationGroup.ImageData(), nil
}

func (s *Service) Invert(imagePath string, img image.Image) (image.Image, error) {
	return s.Apply(imagePath, img, []apitype.ImageOperation{NewImageInvert()})
}

func (s *Service) AutoContrast(imagePath string, img image.Image) (image.Image, error) {
	return s.Apply(imagePath, img, []apitype.ImageOperation{NewImageAutoContrast(0)})
}

func (s *Service) FalseColor(imagePath string, img image.Image) (image.Image, error) {
	return s.Apply(imagePath, img, []apitype.ImageOperation{NewImageFalseColor()})
}
