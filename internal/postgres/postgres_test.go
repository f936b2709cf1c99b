package postgres

import (
	"net/url"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "storefront",
		User:     "shop",
		Password: "p@ss word",
		SSLMode:  "disable",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/storefront", u.Path)
	assert.Equal(t, "shop", u.User.Username())
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "checkout-service", u.Query().Get("application_name"))
}
