package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults loaded from the TOML config file.
// Command-line flags override config values, which override built-ins.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Gradient bool   `toml:"gradient"`
	Border   bool   `toml:"border"`
	Title    string `toml:"title"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Width:    400,
			Height:   400,
			Gradient: true,
			Border:   true,
		},
	}
}

// configPath returns the location of the user config file,
// ~/.config/treesvg/config.toml (following os.UserConfigDir).
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "treesvg", "config.toml"), nil
}

// loadConfig reads the config file at path, falling back to the user config
// location when path is empty. A missing file is not an error: built-in
// defaults are returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// cacheDir returns the configured cache directory, falling back to
// ~/.cache/treesvg (following os.UserCacheDir).
func cacheDir(cfg Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "treesvg"), nil
}
