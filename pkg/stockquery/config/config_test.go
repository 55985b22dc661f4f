package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, preset.OneMonth, cfg.Preset)
	assert.Equal(t, "table", cfg.Format)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Pretty)
	assert.Zero(t, cfg.MaxColWidth)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: 5years\nformat: JSON\ncolumns: [ticker, start]\nmax_col_width: 20\n"), 0o644))
	t.Setenv("STOCKQUERY_PRETTY", "true")
	t.Setenv("STOCKQUERY_COLOR", "false")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, preset.FiveYears, cfg.Preset)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"ticker", "start"}, cfg.Columns)
	assert.Equal(t, 20, cfg.MaxColWidth)
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.Color)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("STOCKQUERY_PRESET", "2w")
	chdir(t, t.TempDir())
	_, err = Load(New(), "")
	assert.ErrorContains(t, err, "unknown preset")
}
