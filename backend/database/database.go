package database

import (
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"github.com/viewmark/viewmark/common/logger"
)

type Database struct {
	instance db.Session
}

func NewDatabase(file string) (*Database, error) {
	logger.Info.Printf("Initializing database %s", file)
	var settings = sqlite.ConnectionURL{
		Database: file,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}

	return &Database{
		instance: session,
	}, nil
}

func NewInMemoryDatabase() *Database {
	logger.Info.Print("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening in-memory database ", err)
	}

	return &Database{
		instance: session,
	}
}

func (s *Database) Session() db.Session {
	return s.instance
}

func (s *Database) Close() error {
	return s.instance.Close()
}
