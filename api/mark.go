package api

import (
	"github.com/viewmark/viewmark/api/apitype"
)

type MarkService interface {
	AddMark(imagePath string, viewId apitype.ViewId, viewPoint apitype.Point) (*apitype.Mark, error)
	RemoveMark(imagePath string, markId apitype.MarkId) error
	Marks(imagePath string) ([]*apitype.Mark, error)
	Count(imagePath string) (int, error)
	RequestMarks(imagePath string)
}
