package main

import (
	"github.com/disintegration/imaging"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/backend"
	"github.com/viewmark/viewmark/backend/database"
	"github.com/viewmark/viewmark/common/event"
	"github.com/viewmark/viewmark/common/logger"
	"github.com/viewmark/viewmark/common/util"
)

const eventBusQueueSize = 100

// Viewport size used until a GUI shell reports a real window size.
const (
	defaultViewportWidth  = 1024
	defaultViewportHeight = 768
)

func main() {
	params := util.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	broker := event.InitBus(eventBusQueueSize)

	stores, err := backend.InitStores(params.DatabaseFile())
	if err != nil {
		logger.Error.Fatal("Could not initialize stores ", err)
	}
	defer stores.Close()

	services, err := backend.InitServices(params, stores, broker)
	if err != nil {
		logger.Error.Fatal("Could not initialize services ", err)
	}

	if params.ImagePath() == "" {
		logger.Info.Print("No image given, nothing to do")
		return
	}

	img, err := imaging.Open(params.ImagePath())
	if err != nil {
		logger.Error.Fatal("Could not open image ", err)
	}

	bounds := img.Bounds()
	imageSize := apitype.SizeOf(bounds.Dx(), bounds.Dy())
	viewportSize := apitype.SizeOf(defaultViewportWidth, defaultViewportHeight)

	zoomService := services.ZoomService
	viewId := zoomService.OpenView(imageSize, viewportSize)
	defer zoomService.CloseView(viewId)

	if state, err := stores.ViewStateStore.GetViewState(params.ImagePath()); err != nil {
		logger.Warn.Printf("Could not load view state: %s", err)
	} else if state != nil {
		zoomService.ZoomBy(viewId, state.ZoomIndex-zoomService.Index(viewId))
		zoomService.ScrollTo(viewId, apitype.PointOf(state.ScrollX, state.ScrollY))
	} else {
		zoomService.ZoomToFit(viewId)
	}

	if fraction, exact := zoomService.Fraction(viewId); exact {
		logger.Info.Printf("Opened %dx%d image at %.4f (%s)",
			imageSize.Width(), imageSize.Height(), zoomService.Scale(viewId), fraction)
	} else {
		logger.Info.Printf("Opened %dx%d image at %.4f",
			imageSize.Width(), imageSize.Height(), zoomService.Scale(viewId))
	}

	if count, err := services.MarkService.Count(params.ImagePath()); err != nil {
		logger.Warn.Printf("Could not count marks: %s", err)
	} else {
		logger.Info.Printf("%d marks on '%s'", count, params.ImagePath())
	}

	if err := stores.ViewStateStore.SaveViewState(&database.ViewState{
		ImagePath: params.ImagePath(),
		ZoomIndex: zoomService.Index(viewId),
		ScrollX:   zoomService.ScrollOffset(viewId).X(),
		ScrollY:   zoomService.ScrollOffset(viewId).Y(),
	}); err != nil {
		logger.Warn.Printf("Could not save view state: %s", err)
	}
}
