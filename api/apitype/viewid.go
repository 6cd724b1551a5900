package apitype

import (
	"github.com/google/uuid"
)

// ViewId identifies one open image view and its zoom state.
type ViewId string

const NoView = ViewId("")

func NewViewId() ViewId {
	return ViewId(uuid.New().String())
}
