// Package config holds the generation settings shared by the CLIs, the
// batch orchestrator, and the validator. Settings come from an optional
// JSON file, overridden by environment variables, overridden by CLI
// flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config holds sprite dimensions, naming, and output settings.
type Config struct {
	// Base and enhanced tier dimensions. Enhanced must be the same
	// integer multiple of base on both axes so pose geometry scales
	// consistently.
	Width          int `json:"width"`
	Height         int `json:"height"`
	EnhancedWidth  int `json:"enhanced_width"`
	EnhancedHeight int `json:"enhanced_height"`

	PaletteName   string `json:"palette"`
	ArchetypeName string `json:"archetype"`
	Dithering     bool   `json:"dithering"`

	OutputDir string `json:"output_dir"`
	Format    string `json:"format"` // "png" or "webp", both lossless
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override file and env settings.
type Flags struct {
	OutputDir      string
	Palette        string
	Archetype      string
	Format         string
	Workers        int
	Width          int
	Height         int
	EnhancedWidth  int
	EnhancedHeight int
	Dither         bool
}

// Resolve applies env overrides, then CLI flags, then defaults for
// anything still unset.
func (c *Config) Resolve(flags Flags) {
	// Env overrides (a .env file, if present, is loaded by the CLIs).
	if v := os.Getenv("SPRITEGEN_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("SPRITEGEN_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SPRITEGEN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}

	// CLI flags take priority.
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Palette != "" {
		c.PaletteName = flags.Palette
	}
	if flags.Archetype != "" {
		c.ArchetypeName = flags.Archetype
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.EnhancedWidth > 0 {
		c.EnhancedWidth = flags.EnhancedWidth
	}
	if flags.EnhancedHeight > 0 {
		c.EnhancedHeight = flags.EnhancedHeight
	}
	if flags.Dither {
		c.Dithering = true
	}

	// Defaults.
	if c.Width <= 0 {
		c.Width = 64
	}
	if c.Height <= 0 {
		c.Height = 96
	}
	if c.EnhancedWidth <= 0 {
		c.EnhancedWidth = c.Width * 4
	}
	if c.EnhancedHeight <= 0 {
		c.EnhancedHeight = c.Height * 4
	}
	if c.PaletteName == "" {
		c.PaletteName = "default"
	}
	if c.ArchetypeName == "" {
		c.ArchetypeName = "balanced"
	}
	if c.OutputDir == "" {
		c.OutputDir = "generated_sprites"
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks the invariants a resolved config must satisfy.
// A bad config is the only fatal condition in the pipeline and is
// surfaced here, before any work starts.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: base dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.EnhancedWidth%c.Width != 0 || c.EnhancedHeight%c.Height != 0 {
		return fmt.Errorf("config: enhanced dimensions %dx%d must be integer multiples of base %dx%d",
			c.EnhancedWidth, c.EnhancedHeight, c.Width, c.Height)
	}
	if c.EnhancedWidth/c.Width != c.EnhancedHeight/c.Height {
		return fmt.Errorf("config: enhanced multiplier differs per axis: %dx vs %dx",
			c.EnhancedWidth/c.Width, c.EnhancedHeight/c.Height)
	}
	if c.Format != "png" && c.Format != "webp" {
		return fmt.Errorf("config: unknown format %q (png or webp)", c.Format)
	}
	return nil
}

// Scale returns the enhanced-tier resolution multiplier.
func (c Config) Scale() int {
	return c.EnhancedWidth / c.Width
}

// Ext returns the output file extension for the configured format.
func (c Config) Ext() string {
	if c.Format == "webp" {
		return ".webp"
	}
	return ".png"
}
