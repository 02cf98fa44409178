// Package config loads mazepath CLI settings from YAML.
//
// Precedence: Default() values, then the YAML file, then command-line flags
// (applied by the caller). Fields missing from the file keep their defaults.
//
// Example file:
//
//	search:
//	  strategy: astar     # 0-3 or dfs|bfs|gbfs|astar
//	  timeout: 5s
//	  max_explored: 100000
//	log:
//	  level: info         # debug|info|warn|error
//	  format: text        # text|json
//	metrics:
//	  file: /var/lib/node_exporter/mazepath.prom
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig controls the solver.
type SearchConfig struct {
	// Strategy is a numeric selector or a strategy name.
	Strategy string `yaml:"strategy"`
	// Timeout bounds one solve; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`
	// MaxExplored caps frontier removals; 0 disables it.
	MaxExplored int `yaml:"max_explored"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	// File, when set, receives the Prometheus text exposition after each run.
	File string `yaml:"file"`
}

// Default returns the built-in settings: DFS, no timeout or limit,
// info-level text logs, no metrics file.
func Default() *Config {
	return &Config{
		Search: SearchConfig{Strategy: "0"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates the YAML file at path on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if _, err := c.Search.ParsedStrategy(); err != nil {
		return fmt.Errorf("%w: search.strategy: %v", ErrInvalidConfig, err)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must not be negative (%s)", ErrInvalidConfig, c.Search.Timeout)
	}
	if c.Search.MaxExplored < 0 {
		return fmt.Errorf("%w: search.max_explored must not be negative (%d)", ErrInvalidConfig, c.Search.MaxExplored)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// ParsedStrategy resolves Strategy through search.ParseStrategy.
func (s SearchConfig) ParsedStrategy() (search.Strategy, error) {
	return search.ParseStrategy(s.Strategy)
}

// SlogLevel maps Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, l.Level)
}

// NewLogger builds a logger writing to w in the configured format and level.
// Invalid settings fall back to info-level text.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
