// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Root                  string  `toml:"root"`
	IncludeDependencyDirs bool    `toml:"include_dependency_dirs"`
	Exclude               Exclude `toml:"exclude"`
	Watch                 Watch   `toml:"watch"`
	Output                Output  `toml:"output"`
	History               History `toml:"history"`
	Metrics               Metrics `toml:"metrics"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RescansPerMinute caps how often watch mode re-runs the scan.
	RescansPerMinute int `toml:"rescans_per_minute"`
}

type Output struct {
	JSON     string `toml:"json"`
	Markdown string `toml:"markdown"`
	Mermaid  string `toml:"mermaid"`
	DOT      string `toml:"dot"`
}

type History struct {
	Path string `toml:"path"`
}

type Metrics struct {
	Addr string `toml:"addr"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerMinute == 0 {
		cfg.Watch.RescansPerMinute = 30
	}
}
