package config

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tovaview.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.ChunkRadius != 4 {
		t.Errorf("ChunkRadius = %d, want 4", cfg.ChunkRadius)
	}
	if !cfg.AmbientOcclusion {
		t.Error("AmbientOcclusion should default to on")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
chunk_radius: 2
ambient_occlusion: false
fov: 90
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ChunkRadius != 2 {
		t.Errorf("ChunkRadius = %d, want 2", cfg.ChunkRadius)
	}
	if cfg.AmbientOcclusion {
		t.Error("AmbientOcclusion = true, want false")
	}
	if cfg.FOV != 90 {
		t.Errorf("FOV = %g, want 90", cfg.FOV)
	}
	def := DefaultConfig()
	if cfg.WindowWidth != def.WindowWidth || cfg.Workers != def.Workers {
		t.Errorf("missing keys should keep defaults, got width %d workers %d", cfg.WindowWidth, cfg.Workers)
	}
	if l, err := cfg.Level(); err != nil || l != slog.LevelDebug {
		t.Errorf("Level() = %v, %v, want debug", l, err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("empty file: got %+v, want defaults", *cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "chunk_radus: 3\n"},
		{"wrong type", "chunk_radius: lots\n"},
		{"malformed", "chunk_radius: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestMergeRespectsExplicitFlags(t *testing.T) {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := DefaultConfig()
	RegisterFlags(fset, cfg, true)
	if err := fset.Parse([]string{"-radius", "7", "-fov", "100"}); err != nil {
		t.Fatal(err)
	}

	fromFile := DefaultConfig()
	fromFile.ChunkRadius = 2
	fromFile.FOV = 60
	fromFile.AmbientOcclusion = false
	fromFile.LogLevel = "warn"

	Merge(cfg, fromFile, ExplicitFlags(fset))

	if cfg.ChunkRadius != 7 {
		t.Errorf("ChunkRadius = %d, want flag value 7", cfg.ChunkRadius)
	}
	if cfg.FOV != 100 {
		t.Errorf("FOV = %g, want flag value 100", cfg.FOV)
	}
	if cfg.AmbientOcclusion {
		t.Error("AmbientOcclusion should come from the file")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want file value warn", cfg.LogLevel)
	}
}

func TestRegisterFlagsHeadless(t *testing.T) {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fset, DefaultConfig(), false)
	if fset.Lookup(FlagRadius) == nil {
		t.Error("world flag missing")
	}
	if fset.Lookup(FlagWidth) != nil {
		t.Error("window flags registered for a headless command")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"negative radius", func(c *Config) { c.ChunkRadius = -1 }, "chunk_radius"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"zero width", func(c *Config) { c.WindowWidth = 0 }, "window size"},
		{"negative height", func(c *Config) { c.WindowHeight = -5 }, "window size"},
		{"flat fov", func(c *Config) { c.FOV = 0 }, "fov"},
		{"wide fov", func(c *Config) { c.FOV = 180 }, "fov"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"empty level", func(c *Config) { c.LogLevel = "" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.ChunkRadius = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("radius 0 should be valid: %v", err)
	}
}
