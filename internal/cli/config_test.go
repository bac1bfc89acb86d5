package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Render.Width != 400 || cfg.Render.Height != 400 {
		t.Errorf("defaults = %dx%d, want 400x400", cfg.Render.Width, cfg.Render.Height)
	}
	if !cfg.Render.Gradient || !cfg.Render.Border {
		t.Error("gradient and border should default to true")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
width = 800
height = 600
gradient = false
border = true
title = "my tree"

[cache]
dir = "/tmp/treesvg-cache"
disabled = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Gradient {
		t.Error("gradient should be false")
	}
	if cfg.Render.Title != "my tree" {
		t.Errorf("title = %q", cfg.Render.Title)
	}
	if !cfg.Cache.Disabled || cfg.Cache.Dir != "/tmp/treesvg-cache" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render\nwidth="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Dir = "/custom/cache"

	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != "/custom/cache" {
		t.Errorf("cacheDir = %q, want /custom/cache", dir)
	}
}
