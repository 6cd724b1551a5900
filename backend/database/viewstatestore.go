package database

import (
	"errors"
	"time"

	"github.com/upper/db/v4"
	"github.com/viewmark/viewmark/common/logger"
)

// ViewStateStore remembers the last zoom level and scroll position per
// image so a reopened image shows up where it was left.
type ViewStateStore struct {
	database   *Database
	collection db.Collection
}

func NewViewStateStore(database *Database) *ViewStateStore {
	return &ViewStateStore{
		database: database,
	}
}

func (s *ViewStateStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("view_state")
	}
	return s.collection
}

// GetViewState returns the remembered state, or nil when the image has
// none yet.
func (s *ViewStateStore) GetViewState(imagePath string) (*ViewState, error) {
	var state ViewState
	err := s.getCollection().Find(db.Cond{"image_path": imagePath}).One(&state)
	if errors.Is(err, db.ErrNoMoreRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *ViewStateStore) SaveViewState(state *ViewState) error {
	logger.Debug.Printf("Saving view state for '%s'", state.ImagePath)
	state.UpdatedTime = time.Now()

	query := s.getCollection().Find(db.Cond{"image_path": state.ImagePath})
	if exists, err := query.Exists(); err != nil {
		return err
	} else if exists {
		return query.Update(state)
	}
	_, err := s.getCollection().Insert(state)
	return err
}
