package database

import (
	"time"

	"github.com/upper/db/v4"
	"github.com/viewmark/viewmark/api/apitype"
	"github.com/viewmark/viewmark/common/logger"
)

type MarkStore struct {
	database   *Database
	collection db.Collection
}

func NewMarkStore(database *Database) *MarkStore {
	return &MarkStore{
		database: database,
	}
}

func (s *MarkStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("mark")
	}
	return s.collection
}

func (s *MarkStore) AddMark(mark *apitype.Mark) (*apitype.Mark, error) {
	logger.Debug.Printf("Adding mark %s to '%s'", mark.Location(), mark.ImagePath())
	result, err := s.getCollection().Insert(&Mark{
		ImagePath:   mark.ImagePath(),
		X:           mark.Location().X(),
		Y:           mark.Location().Y(),
		CreatedTime: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	id, ok := result.ID().(int64)
	if !ok {
		return mark, nil
	}
	return apitype.NewPersistedMark(apitype.MarkId(id), mark), nil
}

func (s *MarkStore) GetMarks(imagePath string) ([]*apitype.Mark, error) {
	var marks []Mark
	err := s.getCollection().
		Find(db.Cond{"image_path": imagePath}).
		OrderBy("id").
		All(&marks)
	if err != nil {
		return nil, err
	}
	return toApiMarks(marks), nil
}

func (s *MarkStore) RemoveMark(imagePath string, markId apitype.MarkId) error {
	return s.getCollection().
		Find(db.Cond{"id": markId, "image_path": imagePath}).
		Delete()
}

func (s *MarkStore) RemoveMarks(imagePath string) error {
	return s.getCollection().
		Find(db.Cond{"image_path": imagePath}).
		Delete()
}

func (s *MarkStore) Count(imagePath string) (int, error) {
	count, err := s.getCollection().
		Find(db.Cond{"image_path": imagePath}).
		Count()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func toApiMarks(marks []Mark) []*apitype.Mark {
	apiMarks := make([]*apitype.Mark, len(marks))
	for i, mark := range marks {
		apiMarks[i] = toApiMark(&mark)
	}
	return apiMarks
}

func toApiMark(mark *Mark) *apitype.Mark {
	return apitype.NewPersistedMark(
		apitype.MarkId(mark.Id),
		apitype.NewMark(mark.ImagePath, apitype.PointOf(mark.X, mark.Y)),
	)
}
