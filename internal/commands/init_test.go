package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosx-dev/pagosx/internal/config"
	"github.com/pagosx-dev/pagosx/internal/reftab"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	for _, d := range []string{
		filepath.Join("files", "input"),
		filepath.Join("files", "input", "processed"),
		filepath.Join("files", "output"),
		"logs",
	} {
		assert.DirExists(t, filepath.Join(dir, d))
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	tables, err := reftab.Load(filepath.Join(dir, cfg.TablesFile))
	require.NoError(t, err)
	class, res := tables.ResolveDocType("1000", "DZ")
	assert.Equal(t, reftab.Resolved, res)
	assert.NotEmpty(t, class)
}

func TestRunInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))
	require.NoError(t, runInit(dir))
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "pagosx", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "extend")
}
