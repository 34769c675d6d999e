package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds plot defaults that flags may override. Values come from an
// optional TOML file; a missing file is not an error.
type Config struct {
	Points   int    `toml:"points"`
	Cmap     string `toml:"cmap"`
	Scale    string `toml:"scale"`
	Format   string `toml:"format"`
	Colorbar bool   `toml:"colorbar"`
	Quiet    bool   `toml:"quiet"`
}

// Default returns the built-in defaults used when no file overrides them.
func Default() Config {
	return Config{
		Points: 401,
		Cmap:   "RdYlBu_r",
		Scale:  "linear",
		Format: "png",
	}
}

// DefaultPath returns the conventional config location, ~/.horbital.toml,
// or empty when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".horbital.toml")
}

// Load reads defaults from path over the built-in values. An empty or
// missing path yields the built-ins.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Points < 25 {
		return Config{}, fmt.Errorf("config %s: points must be at least 25, got %d", path, cfg.Points)
	}
	return cfg, nil
}
