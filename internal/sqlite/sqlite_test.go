package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn(":memory:"))
	assert.Equal(t, "file:dev.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn("file:dev.db?mode=rwc"))
}

func TestNew_ForeignKeysEnabled(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.Get(&enabled, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, enabled)
}
