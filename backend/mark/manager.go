package mark

import (
	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/backend/database"
	"github.com/viewmark/viewmark/common/logger"
)

// Manager places, removes, and counts marks. Click positions arrive in
// view coordinates and are converted to image coordinates through the
// zoom service before they are persisted.
type Manager struct {
	store       *database.MarkStore
	zoomService api.ZoomService
	sender      api.Sender

	api.MarkService
}

func NewManager(store *database.MarkStore, zoomService api.ZoomService, sender api.Sender) *Manager {
	return &Manager{
		store:       store,
		zoomService: zoomService,
		sender:      sender,
	}
}

func (s *Manager) AddMark(imagePath string, viewId apitype.ViewId, viewPoint apitype.Point) (*apitype.Mark, error) {
	imagePoint, err := s.zoomService.ViewToImage(viewId, viewPoint)
	if err != nil {
		s.sendError("Could not resolve mark position", err)
		return nil, err
	}

	mark, err := s.store.AddMark(apitype.NewMark(imagePath, imagePoint))
	if err != nil {
		s.sendError("Could not store mark", err)
		return nil, err
	}

	logger.Debug.Printf("Added mark %s to '%s'", mark.Location(), imagePath)
	s.notifyMarksUpdated(imagePath)
	return mark, nil
}

func (s *Manager) RemoveMark(imagePath string, markId apitype.MarkId) error {
	if err := s.store.RemoveMark(imagePath, markId); err != nil {
		s.sendError("Could not remove mark", err)
		return err
	}
	s.notifyMarksUpdated(imagePath)
	return nil
}

func (s *Manager) Marks(imagePath string) ([]*apitype.Mark, error) {
	return s.store.GetMarks(imagePath)
}

func (s *Manager) Count(imagePath string) (int, error) {
	return s.store.Count(imagePath)
}

func (s *Manager) RequestMarks(imagePath string) {
	s.notifyMarksUpdated(imagePath)
}

func (s *Manager) notifyMarksUpdated(imagePath string) {
	if s.sender == nil {
		return
	}
	marks, err := s.store.GetMarks(imagePath)
	if err != nil {
		s.sendError("Could not load marks", err)
		return
	}
	s.sender.SendCommandToTopic(api.MarksUpdated, &api.MarksUpdatedCommand{
		ImagePath: imagePath,
		Marks:     marks,
		Count:     len(marks),
	})
}

func (s *Manager) sendError(message string, err error) {
	if s.sender != nil {
		s.sender.SendError(message, err)
	} else {
		logger.Error.Printf("%s: %s", message, err)
	}
}
