package backend

import (
	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/backend/database"
	"github.com/viewmark/viewmark/backend/imageproc"
	"github.com/viewmark/viewmark/backend/mark"
	"github.com/viewmark/viewmark/backend/worker"
	"github.com/viewmark/viewmark/backend/zoom"
	"github.com/viewmark/viewmark/common/util"
)

type Stores struct {
	MarkStore      *database.MarkStore
	ViewStateStore *database.ViewStateStore

	db *database.Database
}

func InitStores(databaseFile string) (*Stores, error) {
	db, err := database.NewDatabase(databaseFile)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Stores{
		MarkStore:      database.NewMarkStore(db),
		ViewStateStore: database.NewViewStateStore(db),
		db:             db,
	}, nil
}

func (s *Stores) Close() error {
	return s.db.Close()
}

type Services struct {
	ZoomService      api.ZoomService
	ImageProcService api.ImageProcService
	MarkService      api.MarkService
	TaskRunner       api.TaskRunner
}

func InitServices(params *util.Params, stores *Stores, sender api.Sender) (*Services, error) {
	zoomManager, err := zoom.NewManager(params, sender)
	if err != nil {
		return nil, err
	}

	return &Services{
		ZoomService:      zoomManager,
		ImageProcService: imageproc.NewService(sender),
		MarkService:      mark.NewManager(stores.MarkStore, zoomManager, sender),
		TaskRunner:       worker.NewRunner(sender),
	}, nil
}
