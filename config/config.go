// Package config holds solver settings and loads them from HCL files.
//
// A config file looks like:
//
//	input       = "input.txt"
//	steps       = 26501365
//	debug_steps = 64
//	parallel    = true
//	verify      = false
//	log_level   = "info"
//
// Every attribute except input is optional. offset and period default to
// values derived from the map (period = map width, offset = steps mod period),
// tile_factor to 5 and tile_threshold to 0 (derived, see tilemap.LoadOptions).
// A relative input path is resolved against the config file's directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/katalvlaran/stepgarden/tilemap"
)

// Defaults.
const (
	DefaultInput = "input.txt"
	DefaultSteps = 26501365
	// DeriveOffset asks the solver to use steps mod period.
	DeriveOffset = -1
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the full solver configuration.
type Config struct {
	Input string
	// Steps is the target step count to extrapolate to.
	Steps int64
	// Offset is the step count of the first sample; DeriveOffset for steps mod period.
	Offset int64
	// Period is the spacing between samples; 0 for the map width.
	Period int64
	// DebugSteps, if > 0, runs and prints an extra single search (part 1).
	DebugSteps int
	// TileFactor and TileThreshold feed tilemap.LoadOptions.
	TileFactor    int
	TileThreshold int
	// Parallel runs the three samples concurrently.
	Parallel bool
	// Verify runs a fourth, wrapping sample and checks it against the fit.
	Verify   bool
	LogLevel slog.Level
}

// Default returns the configuration used when only an input path is given.
func Default() Config {
	return Config{
		Input:         DefaultInput,
		Steps:         DefaultSteps,
		Offset:        DeriveOffset,
		Period:        0,
		DebugSteps:    64,
		TileFactor:    tilemap.DefaultTileFactor,
		TileThreshold: 0,
		Parallel:      true,
		Verify:        false,
		LogLevel:      slog.LevelInfo,
	}
}

// LoadOptions returns the tiling options for this configuration.
func (c Config) LoadOptions() tilemap.LoadOptions {
	return tilemap.LoadOptions{TileThreshold: c.TileThreshold, TileFactor: c.TileFactor}
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps cannot be negative (%d)", ErrInvalidConfig, c.Steps)
	case c.Offset < DeriveOffset:
		return fmt.Errorf("%w: offset cannot be negative (%d)", ErrInvalidConfig, c.Offset)
	case c.Period < 0:
		return fmt.Errorf("%w: period cannot be negative (%d)", ErrInvalidConfig, c.Period)
	case c.DebugSteps < 0:
		return fmt.Errorf("%w: debug_steps cannot be negative (%d)", ErrInvalidConfig, c.DebugSteps)
	case c.TileFactor < 1 || c.TileFactor%2 == 0:
		return fmt.Errorf("%w: tile_factor must be odd and positive (%d)", ErrInvalidConfig, c.TileFactor)
	case c.TileThreshold < 0:
		return fmt.Errorf("%w: tile_threshold cannot be negative (%d)", ErrInvalidConfig, c.TileThreshold)
	}
	return nil
}

// file mirrors the HCL attributes; pointers distinguish absent from zero.
type file struct {
	Input         string  `hcl:"input"`
	Steps         *int64  `hcl:"steps,optional"`
	Offset        *int64  `hcl:"offset,optional"`
	Period        *int64  `hcl:"period,optional"`
	DebugSteps    *int    `hcl:"debug_steps,optional"`
	TileFactor    *int    `hcl:"tile_factor,optional"`
	TileThreshold *int    `hcl:"tile_threshold,optional"`
	Parallel      *bool   `hcl:"parallel,optional"`
	Verify        *bool   `hcl:"verify,optional"`
	LogLevel      *string `hcl:"log_level,optional"`
}

// LoadFile decodes the HCL file at path over Default and validates the result.
func LoadFile(path string) (Config, error) {
	var f file
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := f.apply(Default())
	if err != nil {
		return Config{}, err
	}
	if !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), cfg.Input)
	}
	return cfg, cfg.Validate()
}

// Parse decodes HCL source; filename is used for diagnostics and must end in
// ".hcl". Relative input paths are returned unchanged.
func Parse(filename string, src []byte) (Config, error) {
	var f file
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := f.apply(Default())
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (f file) apply(cfg Config) (Config, error) {
	cfg.Input = f.Input
	if f.Steps != nil {
		cfg.Steps = *f.Steps
	}
	if f.Offset != nil {
		cfg.Offset = *f.Offset
	}
	if f.Period != nil {
		cfg.Period = *f.Period
	}
	if f.DebugSteps != nil {
		cfg.DebugSteps = *f.DebugSteps
	}
	if f.TileFactor != nil {
		cfg.TileFactor = *f.TileFactor
	}
	if f.TileThreshold != nil {
		cfg.TileThreshold = *f.TileThreshold
	}
	if f.Parallel != nil {
		cfg.Parallel = *f.Parallel
	}
	if f.Verify != nil {
		cfg.Verify = *f.Verify
	}
	if f.LogLevel != nil {
		if err := cfg.LogLevel.UnmarshalText([]byte(*f.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}
