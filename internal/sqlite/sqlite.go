// Package sqlite opens the embedded store used for local development and tests.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName is the name modernc.org/sqlite registers with database/sql.
const DriverName = "sqlite"

// New opens path with foreign keys enforced. SQLite allows a single writer,
// so the pool is capped at one connection; this also keeps ":memory:"
// databases alive for the pool's lifetime.
func New(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
