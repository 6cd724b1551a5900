package database

import (
	"github.com/viewmark/viewmark/common/logger"
)

func (s *Database) Migrate() error {
	if s.tablesExist() {
		return nil
	}

	logger.Info.Print("Tables don't exist. Creating...")
	_, err := s.instance.SQL().Exec(`
		CREATE TABLE mark (
		    id INTEGER PRIMARY KEY,
		    image_path TEXT,
		    x REAL,
		    y REAL,
		    created_timestamp DATETIME
		);
	`)
	if err != nil {
		return err
	}

	_, err = s.instance.SQL().Exec(`
		CREATE INDEX mark_image_path_idx ON mark(image_path);
	`)
	if err != nil {
		return err
	}

	_, err = s.instance.SQL().Exec(`
		CREATE TABLE view_state (
		    image_path TEXT PRIMARY KEY,
		    zoom_index INTEGER,
		    scroll_x REAL,
		    scroll_y REAL,
		    updated_timestamp DATETIME
		);
	`)
	if err != nil {
		return err
	}

	logger.Info.Print("Tables created")
	return nil
}

func (s *Database) tablesExist() bool {
	rows, err := s.instance.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name='mark';
	`)
	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}
