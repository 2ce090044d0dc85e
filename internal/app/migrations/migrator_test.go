package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, migrationDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	prev := ""
	for _, e := range entries {
		name := e.Name()
		assert.True(t, strings.HasSuffix(name, ".sql"), name)
		assert.Greater(t, name, prev, "migrations must sort in apply order")
		prev = name

		body, err := fs.ReadFile(migrationFS, migrationDir+"/"+name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestReactionTypeConstraintName(t *testing.T) {
	// repositories map violations of this constraint to a duplicate-type failure
	body, err := fs.ReadFile(migrationFS, migrationDir+"/00003_create_reactions.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CONSTRAINT reactions_type_key UNIQUE (type)")
}
