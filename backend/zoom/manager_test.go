package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/api/apitype"
)

type RecordingSender struct {
	api.Sender

	topics   []api.Topic
	commands []apitype.Command
	errors   []error
}

func (s *RecordingSender) SendToTopic(topic api.Topic) {
	s.topics = append(s.topics, topic)
}

func (s *RecordingSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.topics = append(s.topics, topic)
	s.commands = append(s.commands, command)
}

func (s *RecordingSender) SendError(message string, err error) {
	s.errors = append(s.errors, err)
}

func (s *RecordingSender) Reset() {
	s.topics = nil
	s.commands = nil
	s.errors = nil
}

func (s *RecordingSender) LastZoomChanged(t *testing.T) *api.ZoomChangedCommand {
	for i := len(s.commands) - 1; i >= 0; i-- {
		if command, ok := s.commands[i].(*api.ZoomChangedCommand); ok {
			return command
		}
	}
	require.Fail(t, "no zoom change published")
	return nil
}

func (s *RecordingSender) CountTopic(topic api.Topic) int {
	count := 0
	for _, sent := range s.topics {
		if sent == topic {
			count++
		}
	}
	return count
}

func smallManager(t *testing.T, sender api.Sender) *Manager {
	table, err := NewTable(Options{Step: 1.1, HalfCount: 2})
	require.NoError(t, err)
	return &Manager{
		table:  table,
		sender: sender,
		views:  map[apitype.ViewId]*view{},
	}
}

func TestManager_OpenView(t *testing.T) {
	a := assert.New(t)

	t.Run("Fitting image opens at 100 %", func(t *testing.T) {
		sender := &RecordingSender{}
		manager, err := NewManager(nil, sender)
		require.NoError(t, err)

		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))
		a.NotEqual(apitype.NoView, viewId)
		a.Equal(1.0, manager.Scale(viewId))
		a.Equal(34, manager.Index(viewId))
		a.Equal(1, sender.CountTopic(api.ViewOpened))
		a.Equal(1, sender.CountTopic(api.ZoomChanged))
	})
	t.Run("Oversized image opens zoomed to fit", func(t *testing.T) {
		sender := &RecordingSender{}
		manager, err := NewManager(nil, sender)
		require.NoError(t, err)

		// Fit ratio 0.25, largest level below it is 1.1^-15.
		viewId := manager.OpenView(apitype.SizeOf(2000, 1000), apitype.SizeOf(500, 500))
		a.Equal(19, manager.Index(viewId))
		a.InDelta(0.2394, manager.Scale(viewId), 0.0001)
		a.LessOrEqual(manager.Scale(viewId), 0.25)
	})
	t.Run("Unity is an exact fraction", func(t *testing.T) {
		manager, err := NewManager(nil, &RecordingSender{})
		require.NoError(t, err)

		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))
		fraction, exact := manager.Fraction(viewId)
		a.True(exact)
		a.Equal("1/1", fraction.String())
	})
}

func TestManager_CloseView(t *testing.T) {
	a := assert.New(t)
	sender := &RecordingSender{}
	manager := smallManager(t, sender)

	viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))
	manager.CloseView(viewId)
	a.Equal(1, sender.CountTopic(api.ViewClosed))

	// A second close is a warning, not another event.
	manager.CloseView(viewId)
	a.Equal(1, sender.CountTopic(api.ViewClosed))
}

func TestManager_Zooming(t *testing.T) {
	a := assert.New(t)

	t.Run("Zoom in publishes the new level", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))
		sender.Reset()

		manager.ZoomIn(viewId)
		command := sender.LastZoomChanged(t)
		a.Equal(3, command.Index)
		a.InDelta(1.1, command.Scale, 0.0001)
	})
	t.Run("No event at the top of the table", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))

		manager.ZoomBy(viewId, 10)
		a.False(manager.CanZoomIn(viewId))
		sender.Reset()

		manager.ZoomIn(viewId)
		a.Equal(0, sender.CountTopic(api.ZoomChanged))
		a.Equal(4, manager.Index(viewId))
	})
	t.Run("Zoom to ratio snaps to the nearest level", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))

		manager.ZoomToRatio(viewId, 0.9)
		a.Equal(1, manager.Index(viewId))
	})
	t.Run("Zoom to fit picks the largest fitting level", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(500, 500), apitype.SizeOf(500, 500))

		manager.Resize(viewId, apitype.SizeOf(480, 480))
		manager.ZoomToFit(viewId)
		// Fit ratio 0.96, largest level below it is 1/1.1.
		a.Equal(1, manager.Index(viewId))
	})
	t.Run("Reset returns to 100 %", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(100, 100), apitype.SizeOf(500, 500))

		manager.ZoomBy(viewId, 2)
		manager.ZoomReset(viewId)
		a.Equal(1.0, manager.Scale(viewId))
	})
}

func TestManager_Scrolling(t *testing.T) {
	a := assert.New(t)

	t.Run("Scroll clamps to the image", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
		manager.ZoomReset(viewId)
		sender.Reset()

		manager.ScrollTo(viewId, apitype.PointOf(900, 200))
		command := sender.LastZoomChanged(t)
		a.Equal(500.0, command.ScrollOffset.X())
		a.Equal(200.0, command.ScrollOffset.Y())
	})
	t.Run("Resize re-clamps the offset", func(t *testing.T) {
		sender := &RecordingSender{}
		manager := smallManager(t, sender)
		viewId := manager.OpenView(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
		manager.ZoomReset(viewId)
		manager.ScrollTo(viewId, apitype.PointOf(500, 500))

		manager.Resize(viewId, apitype.SizeOf(1000, 1000))
		a.Equal(0.0, manager.ScrollOffset(viewId).X())
		a.Equal(0.0, manager.ScrollOffset(viewId).Y())
	})
}

func TestManager_Transforms(t *testing.T) {
	a := assert.New(t)
	sender := &RecordingSender{}
	manager := smallManager(t, sender)
	viewId := manager.OpenView(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
	manager.ZoomReset(viewId)
	manager.ScrollTo(viewId, apitype.PointOf(100, 100))

	viewPoint := manager.ImageToView(viewId, apitype.PointOf(150, 150))
	a.Equal(50.0, viewPoint.X())
	a.Equal(50.0, viewPoint.Y())

	imagePoint, err := manager.ViewToImage(viewId, viewPoint)
	require.NoError(t, err)
	a.InDelta(150.0, imagePoint.X(), 1e-9)
	a.InDelta(150.0, imagePoint.Y(), 1e-9)
}

func TestManager_UnknownView(t *testing.T) {
	a := assert.New(t)
	sender := &RecordingSender{}
	manager := smallManager(t, sender)
	unknown := apitype.NewViewId()

	a.Equal(1.0, manager.Scale(unknown))
	a.Equal(0, manager.Index(unknown))
	a.False(manager.CanZoomIn(unknown))
	a.False(manager.CanZoomOut(unknown))

	manager.ZoomIn(unknown)
	manager.ScrollTo(unknown, apitype.PointOf(1, 1))
	a.Equal(0, sender.CountTopic(api.ZoomChanged))
	a.Empty(sender.errors)
}
