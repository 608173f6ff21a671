package db

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

var (
	db   *sql.DB
	once sync.Once
)

// Init opens the sqlite catalog database. Later calls are no-ops.
func Init(path string) error {
	var err error
	once.Do(func() {
		db, err = Open(path)
		if err != nil {
			return
		}
		log.Info().Str("path", path).Msg("catalog database opened")
	})
	return err
}

// Open opens and pings a sqlite database at path.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return conn, nil
}

// Get returns the connection opened by Init.
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// Initialized reports whether Init has opened a connection.
func Initialized() bool {
	return db != nil
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
