package migrations

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	for _, dir := range []string{PostgresDir, SQLiteDir} {
		files, err := fs.Glob(Migrations, dir+"/*.sql")
		require.NoError(t, err)
		assert.Len(t, files, 2, dir)
	}
}

// JSONB normalizes documents (key order, whitespace, duplicate keys), which
// would break exact save round trips.
func TestMigrations_PostgresSaveDataKeepsText(t *testing.T) {
	b, err := fs.ReadFile(Migrations, PostgresDir+"/00001_create_users.sql")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*save_data\s+JSON,`), string(b))
	assert.NotContains(t, string(b), "JSONB")
}
