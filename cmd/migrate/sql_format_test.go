package main

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Goose applies migrations by numeric version prefix; a misnamed file is
// silently skipped, so the naming is enforced here.
var migrationFileName = regexp.MustCompile(`^\d{14}_[a-z0-9_]+\.sql$`)

func TestMigrations_GooseFormat(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")

	dir := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", defaultMigrationsDir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var sqlFiles int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		sqlFiles++
		require.Regexp(t, migrationFileName, e.Name())

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)

		s := string(b)
		require.Contains(t, s, "-- +goose Up", e.Name())
		require.Contains(t, s, "-- +goose Down", e.Name())
		require.Less(t, strings.Index(s, "-- +goose Up"), strings.Index(s, "-- +goose Down"), e.Name())
	}
	require.NotZero(t, sqlFiles, "no migrations found in %s", dir)
}
