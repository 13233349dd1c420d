package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linolastella/checkout-sim/sim"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStoreConfig_YAML(t *testing.T) {
	path := writeFile(t, "store.yaml", `
cashier_count: 2
express_count: 1
self_serve_count: 3
line_capacity: 10
`)

	cfg, err := loadStoreConfig(path)

	require.NoError(t, err)
	assert.Equal(t, sim.NewStoreConfig(2, 1, 3, 10), cfg)
}

func TestLoadStoreConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json",
		`{"cashier_count": 3, "express_count": 2, "self_serve_count": 1, "line_capacity": 4}`)

	cfg, err := loadStoreConfig(path)

	require.NoError(t, err)
	assert.Equal(t, sim.NewStoreConfig(3, 2, 1, 4), cfg)
}

func TestLoadStoreConfig_UnknownKeyRejected(t *testing.T) {
	// GIVEN a config with a misspelled key
	path := writeFile(t, "store.yaml", "cashier_cout: 2\nline_capacity: 3\n")

	// WHEN loaded
	_, err := loadStoreConfig(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadStoreConfig_InvalidValues(t *testing.T) {
	path := writeFile(t, "store.yaml", "cashier_count: 1\nline_capacity: 0\n")
	_, err := loadStoreConfig(path)
	assert.ErrorContains(t, err, "line_capacity")
}

func TestLoadStoreConfig_MissingFile(t *testing.T) {
	_, err := loadStoreConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
