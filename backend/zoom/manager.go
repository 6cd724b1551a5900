package zoom

import (
	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/logger"
	"github.com/viewmark/viewmark/common/util"
)

type view struct {
	state    *State
	viewport *Viewport
}

// Manager is the event-layer facade over the zoom engine. It owns the
// memoized zoom table and one State+Viewport pair per open view, and
// publishes a ZoomChangedCommand after every mutation. It holds no
// reference back to any widget; the GUI layer calls in and listens on
// the bus.
type Manager struct {
	table  *Table
	sender api.Sender
	views  map[apitype.ViewId]*view

	api.ZoomService
}

func NewManager(params *util.Params, sender api.Sender) (*Manager, error) {
	options := DefaultOptions()
	if params != nil {
		options.Step = params.MagStep()
		if params.TotalMagSteps() > 0 {
			options.HalfCount = params.TotalMagSteps() / 2
		}
		options.ErrorTol = params.RationalErrorTol()
	}

	table, err := NewTable(options)
	if err != nil {
		return nil, err
	}
	return &Manager{
		table:  table,
		sender: sender,
		views:  map[apitype.ViewId]*view{},
	}, nil
}

// OpenView registers a new view at 100 %, or zoomed to fit when the
// image does not fit the initial viewport.
func (s *Manager) OpenView(imageSize apitype.Size, viewportSize apitype.Size) apitype.ViewId {
	viewId := apitype.NewViewId()
	v := &view{
		state:    NewState(s.table),
		viewport: NewViewport(imageSize, viewportSize),
	}
	if fit, err := v.viewport.FitRatio(); err == nil && fit < 1.0 {
		v.state.index = s.table.FloorIndex(fit)
	}
	s.views[viewId] = v

	if s.sender != nil {
		s.sender.SendCommandToTopic(api.ViewOpened, &api.ViewOpenedCommand{
			ViewId:    viewId,
			ImageSize: imageSize,
		})
	}
	s.notifyZoomChanged(viewId, v)
	return viewId
}

func (s *Manager) CloseView(viewId apitype.ViewId) {
	if _, ok := s.views[viewId]; !ok {
		logger.Warn.Printf("Cannot close unknown view '%s'", viewId)
		return
	}
	delete(s.views, viewId)
	if s.sender != nil {
		s.sender.SendCommandToTopic(api.ViewClosed, &api.ViewClosedCommand{ViewId: viewId})
	}
}

func (s *Manager) Scale(viewId apitype.ViewId) float64 {
	if v := s.findView(viewId); v != nil {
		return v.state.Scale()
	}
	return 1.0
}

func (s *Manager) Index(viewId apitype.ViewId) int {
	if v := s.findView(viewId); v != nil {
		return v.state.Index()
	}
	return 0
}

func (s *Manager) ScrollOffset(viewId apitype.ViewId) apitype.Point {
	if v := s.findView(viewId); v != nil {
		return v.viewport.ScrollOffset()
	}
	return apitype.Point{}
}

func (s *Manager) Fraction(viewId apitype.ViewId) (apitype.Rational, bool) {
	if v := s.findView(viewId); v != nil {
		return v.state.Fraction()
	}
	return apitype.Rational{}, false
}

func (s *Manager) CanZoomIn(viewId apitype.ViewId) bool {
	v := s.findView(viewId)
	return v != nil && !v.state.AtMax()
}

func (s *Manager) CanZoomOut(viewId apitype.ViewId) bool {
	v := s.findView(viewId)
	return v != nil && !v.state.AtMin()
}

func (s *Manager) ZoomIn(viewId apitype.ViewId) {
	s.mutate(viewId, func(v *view) bool {
		return v.state.ZoomIn()
	})
}

func (s *Manager) ZoomOut(viewId apitype.ViewId) {
	s.mutate(viewId, func(v *view) bool {
		return v.state.ZoomOut()
	})
}

func (s *Manager) ZoomBy(viewId apitype.ViewId, steps int) {
	s.mutate(viewId, func(v *view) bool {
		return v.state.ZoomBy(steps)
	})
}

func (s *Manager) ZoomToRatio(viewId apitype.ViewId, target float64) {
	s.mutate(viewId, func(v *view) bool {
		v.state.ZoomToRatio(target)
		return true
	})
}

// ZoomToFit picks the largest table level at which the whole image is
// visible.
func (s *Manager) ZoomToFit(viewId apitype.ViewId) {
	s.mutate(viewId, func(v *view) bool {
		fit, err := v.viewport.FitRatio()
		if err != nil {
			s.reportError("Cannot zoom to fit", err)
			return false
		}
		v.state.index = s.table.FloorIndex(fit)
		return true
	})
}

func (s *Manager) ZoomReset(viewId apitype.ViewId) {
	s.mutate(viewId, func(v *view) bool {
		v.state.Reset()
		return true
	})
}

func (s *Manager) Resize(viewId apitype.ViewId, viewportSize apitype.Size) {
	s.mutate(viewId, func(v *view) bool {
		v.viewport.SetViewportSize(viewportSize)
		return true
	})
}

func (s *Manager) ScrollTo(viewId apitype.ViewId, offset apitype.Point) {
	s.mutate(viewId, func(v *view) bool {
		if err := v.viewport.SetScrollOffset(offset, v.state.Scale()); err != nil {
			s.reportError("Cannot scroll", err)
			return false
		}
		return true
	})
}

func (s *Manager) ImageToView(viewId apitype.ViewId, point apitype.Point) apitype.Point {
	v := s.findView(viewId)
	if v == nil {
		return point
	}
	return ImageToView(point, v.state.Scale(), v.viewport.ScrollOffset())
}

func (s *Manager) ViewToImage(viewId apitype.ViewId, point apitype.Point) (apitype.Point, error) {
	v := s.findView(viewId)
	if v == nil {
		return point, nil
	}
	return ViewToImage(point, v.state.Scale(), v.viewport.ScrollOffset())
}

// mutate runs fn on the view and, when it reports a change, re-clamps
// the scroll offset for the new scale and notifies listeners.
func (s *Manager) mutate(viewId apitype.ViewId, fn func(v *view) bool) {
	v := s.findView(viewId)
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	if err := v.viewport.SetScrollOffset(v.viewport.ScrollOffset(), v.state.Scale()); err != nil {
		s.reportError("Cannot re-clamp scroll offset", err)
		return
	}
	s.notifyZoomChanged(viewId, v)
}

func (s *Manager) findView(viewId apitype.ViewId) *view {
	v, ok := s.views[viewId]
	if !ok {
		logger.Warn.Printf("Unknown view '%s'", viewId)
		return nil
	}
	return v
}

func (s *Manager) notifyZoomChanged(viewId apitype.ViewId, v *view) {
	logger.Trace.Printf("View '%s' zoom %d (%.4f)", viewId, v.state.Index(), v.state.Scale())
	if s.sender == nil {
		return
	}
	fraction, exact := v.state.Fraction()
	s.sender.SendCommandToTopic(api.ZoomChanged, &api.ZoomChangedCommand{
		ViewId:        viewId,
		Index:         v.state.Index(),
		Scale:         v.state.Scale(),
		Fraction:      fraction,
		ExactFraction: exact,
		ScrollOffset:  v.viewport.ScrollOffset(),
	})
}

func (s *Manager) reportError(message string, err error) {
	if s.sender != nil {
		s.sender.SendError(message, err)
	} else {
		logger.Error.Printf("%s: %s", message, err)
	}
}
