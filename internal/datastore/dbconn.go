// Package datastore implements Postgres-backed repositories for the
// persisted entities.
package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // Postgres driver
)

// NewDB opens a database connection and verifies it with a ping.
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, err := sql.Open(dbtype, connstr)
	if err != nil {
		return nil, fmt.Errorf("error opening connection -> %v", err)
	}

	if pingErr := db.Ping(); pingErr != nil {
		return nil, fmt.Errorf("could not establish connection with database -> %v", pingErr)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string.
func BuildDBConnStr(host, user, password, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", user, password, host, dbname, sslmode)
}

// NoRowsError marks a lookup that matched no rows, so handlers can map
// it to a 404 instead of a 500.
type NoRowsError struct {
	Entity string
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%s: no rows returned for scan: %v", nr.Entity, nr.Err)
}

// IsNoRows reports whether err is a NoRowsError.
func IsNoRows(err error) bool {
	_, ok := err.(NoRowsError)
	return ok
}
