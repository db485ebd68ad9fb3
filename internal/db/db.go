package db

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

// Open opens a database connection and verifies it with a ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// MustOpen returns an open and verified database connection or exits.
func MustOpen(dsn string) *sql.DB {
	db, err := Open(dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return db
}
