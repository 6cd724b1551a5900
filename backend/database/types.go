package database

import (
	"time"
)

type Mark struct {
	Id          int64     `db:"id,omitempty"`
	ImagePath   string    `db:"image_path"`
	X           float64   `db:"x"`
	Y           float64   `db:"y"`
	CreatedTime time.Time `db:"created_timestamp"`
}

type ViewState struct {
	ImagePath   string    `db:"image_path"`
	ZoomIndex   int       `db:"zoom_index"`
	ScrollX     float64   `db:"scroll_x"`
	ScrollY     float64   `db:"scroll_y"`
	UpdatedTime time.Time `db:"updated_timestamp"`
}
