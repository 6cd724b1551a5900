package apitype

type MarkId int64

const NoMark = MarkId(-1)

// Mark is a counted point of interest placed on an image, in image
// coordinates.
type Mark struct {
	id        MarkId
	imagePath string
	location  Point
}

func NewMark(imagePath string, location Point) *Mark {
	return &Mark{
		id:        NoMark,
		imagePath: imagePath,
		location:  location,
	}
}

func NewPersistedMark(id MarkId, mark *Mark) *Mark {
	return &Mark{
		id:        id,
		imagePath: mark.imagePath,
		location:  mark.location,
	}
}

func (s *Mark) Id() MarkId {
	return s.id
}

func (s *Mark) ImagePath() string {
	return s.imagePath
}

func (s *Mark) Location() Point {
	return s.location
}
