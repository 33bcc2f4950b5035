// Package config holds the settings shared by the viewer and meshdump.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the world and viewer settings.
type Config struct {
	ChunkRadius      int  `yaml:"chunk_radius"` // chunks span [-radius, radius) on both axes
	AmbientOcclusion bool `yaml:"ambient_occlusion"`
	Workers          int  `yaml:"workers"`

	VSync        bool    `yaml:"vsync"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	FOV          float32 `yaml:"fov"` // vertical, degrees
	ShowDebug    bool    `yaml:"show_debug"`
	IconPath     string  `yaml:"icon_path"`

	LogLevel string `yaml:"log_level"` // debug, info, warn or error
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkRadius:      4,
		AmbientOcclusion: true,
		Workers:          runtime.NumCPU(),
		VSync:            true,
		WindowWidth:      1280,
		WindowHeight:     720,
		FOV:              70,
		ShowDebug:        false,
		LogLevel:         "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Flag names understood by RegisterFlags and Merge.
const (
	FlagRadius   = "radius"
	FlagAO       = "ao"
	FlagWorkers  = "workers"
	FlagVSync    = "vsync"
	FlagWidth    = "width"
	FlagHeight   = "height"
	FlagFOV      = "fov"
	FlagDebug    = "debug"
	FlagIcon     = "icon"
	FlagLogLevel = "log-level"
)

// RegisterFlags binds the world flags to cfg. Window flags are added when
// viewer is true.
func RegisterFlags(fs *flag.FlagSet, cfg *Config, viewer bool) {
	fs.IntVar(&cfg.ChunkRadius, FlagRadius, cfg.ChunkRadius, "chunk grid radius")
	fs.BoolVar(&cfg.AmbientOcclusion, FlagAO, cfg.AmbientOcclusion, "ambient occlusion")
	fs.IntVar(&cfg.Workers, FlagWorkers, cfg.Workers, "chunk build workers")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")
	if !viewer {
		return
	}
	fs.BoolVar(&cfg.VSync, FlagVSync, cfg.VSync, "wait for vertical sync")
	fs.IntVar(&cfg.WindowWidth, FlagWidth, cfg.WindowWidth, "window width")
	fs.IntVar(&cfg.WindowHeight, FlagHeight, cfg.WindowHeight, "window height")
	fs.Func(FlagFOV, "vertical field of view in degrees", func(s string) error {
		var v float32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		cfg.FOV = v
		return nil
	})
	fs.BoolVar(&cfg.ShowDebug, FlagDebug, cfg.ShowDebug, "show the debug overlay")
	fs.StringVar(&cfg.IconPath, FlagIcon, cfg.IconPath, "window icon image")
}

// ExplicitFlags returns the names of the flags set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags[FlagRadius] {
		cfg.ChunkRadius = fromFile.ChunkRadius
	}
	if !explicitFlags[FlagAO] {
		cfg.AmbientOcclusion = fromFile.AmbientOcclusion
	}
	if !explicitFlags[FlagWorkers] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags[FlagVSync] {
		cfg.VSync = fromFile.VSync
	}
	if !explicitFlags[FlagWidth] {
		cfg.WindowWidth = fromFile.WindowWidth
	}
	if !explicitFlags[FlagHeight] {
		cfg.WindowHeight = fromFile.WindowHeight
	}
	if !explicitFlags[FlagFOV] {
		cfg.FOV = fromFile.FOV
	}
	if !explicitFlags[FlagDebug] {
		cfg.ShowDebug = fromFile.ShowDebug
	}
	if !explicitFlags[FlagIcon] {
		cfg.IconPath = fromFile.IconPath
	}
	if !explicitFlags[FlagLogLevel] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate reports the first setting out of range.
func (c *Config) Validate() error {
	switch {
	case c.ChunkRadius < 0:
		return fmt.Errorf("chunk_radius: %d is negative", c.ChunkRadius)
	case c.Workers < 1:
		return fmt.Errorf("workers: %d, need at least 1", c.Workers)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size: %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("fov: %g outside (0, 180)", c.FOV)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
