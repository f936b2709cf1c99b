// Package migrations holds the store schema for every supported driver.
package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SchemaVersion is bumped together with the embedded schema files.
const SchemaVersion = 1

var (
	//go:embed postgres.sql
	postgresSchema string

	//go:embed sqlite.sql
	sqliteSchema string
)

func schemaFor(driver string) (string, error) {
	switch driver {
	case "postgres":
		return postgresSchema, nil
	case "sqlite":
		return sqliteSchema, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// Apply creates missing tables and records the schema version. It is safe to
// run on every start.
func Apply(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFor(db.DriverName())
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	query := db.Rebind(`INSERT INTO schema_version (version) VALUES (?) ON CONFLICT (version) DO NOTHING`)
	if _, err := db.ExecContext(ctx, query, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// Version returns the highest applied schema version, or 0 on a fresh store.
func Version(ctx context.Context, db *sqlx.DB) (int, error) {
	var v int
	if err := db.GetContext(ctx, &v, `SELECT COALESCE(MAX(version), 0) FROM schema_version`); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}
