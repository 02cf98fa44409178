package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/search"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	s, err := cfg.Search.ParsedStrategy()
	require.NoError(t, err)
	assert.Equal(t, search.DFS, s)
	assert.Zero(t, cfg.Search.Timeout)
	assert.Empty(t, cfg.Metrics.File)
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
search:
  strategy: astar
  timeout: 1500ms
  max_explored: 42
log:
  format: json
metrics:
  file: out.prom
`)
	cfg, err := config.Parse(data)
	require.NoError(t, err)

	s, err := cfg.Search.ParsedStrategy()
	require.NoError(t, err)
	assert.Equal(t, search.AStar, s)
	assert.Equal(t, 1500*time.Millisecond, cfg.Search.Timeout)
	assert.Equal(t, 42, cfg.Search.MaxExplored)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset fields keep defaults")
	assert.Equal(t, "out.prom", cfg.Metrics.File)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"BadStrategy": "search:\n  strategy: dijkstra\n",
		"NegTimeout":  "search:\n  timeout: -1s\n",
		"NegLimit":    "search:\n  max_explored: -3\n",
		"BadLevel":    "log:\n  level: loud\n",
		"BadFormat":   "log:\n  format: xml\n",
		"BadYAML":     "search: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazepath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  strategy: 1\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	s, _ := cfg.Search.ParsedStrategy()
	assert.Equal(t, search.BFS, s)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)
}
