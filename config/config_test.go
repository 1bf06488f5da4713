package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjhade/project-portfolio/errs"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "42", "BAD": "not a number"}

	assert.Equal(t, 42, GetInt(c, "TIMEOUT", 10))
	assert.Equal(t, 10, GetInt(c, "BAD", 10))
	assert.Equal(t, 10, GetInt(c, "MISSING", 10))
	assert.Equal(t, 10, GetInt(nil, "TIMEOUT", 10))
}

func TestRequire(t *testing.T) {
	c := map[string]string{"DATABASE_URL": "postgres://localhost/portfolio", "EMPTY": ""}

	val, err := Require(c, "DATABASE_URL")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/portfolio", val)

	_, err = Require(c, "EMPTY")
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))

	_, err = Require(c, "MISSING")
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
}
