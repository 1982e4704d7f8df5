// Package config holds runtime configuration read from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// BaseURL points at the mock content API.
	BaseURL string        `env:"POSTDECK_BASE_URL" envDefault:"https://dummyjson.com"`
	Timeout time.Duration `env:"POSTDECK_TIMEOUT" envDefault:"15s"`
	// StateDir holds the session db (allocator counters, modified/liked
	// sets). Defaults under the user config dir.
	StateDir string `env:"POSTDECK_STATE_DIR"`
	// DebugLog, when set, receives best-effort TUI debug lines.
	DebugLog string `env:"POSTDECK_DEBUG_LOG"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir()
	}
	return cfg, nil
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "postdeck")
	}
	return ".postdeck"
}
