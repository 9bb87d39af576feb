package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stepgarden/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, int64(26501365), cfg.Steps)
	assert.Equal(t, int64(config.DeriveOffset), cfg.Offset)
	assert.Equal(t, 64, cfg.DebugSteps)
	assert.Equal(t, 5, cfg.LoadOptions().TileFactor)
	assert.Zero(t, cfg.LoadOptions().TileThreshold)
}

func TestParse_Full(t *testing.T) {
	src := []byte(`
input          = "maps/garden.txt"
steps          = 38
offset         = 5
period         = 11
debug_steps    = 0
tile_factor    = 7
tile_threshold = 3
parallel       = false
verify         = true
log_level      = "debug"
`)
	cfg, err := config.Parse("garden.hcl", src)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Input:         "maps/garden.txt",
		Steps:         38,
		Offset:        5,
		Period:        11,
		DebugSteps:    0,
		TileFactor:    7,
		TileThreshold: 3,
		Parallel:      false,
		Verify:        true,
		LogLevel:      slog.LevelDebug,
	}, cfg)
}

func TestParse_DefaultsKept(t *testing.T) {
	cfg, err := config.Parse("garden.hcl", []byte(`input = "x.txt"`))
	require.NoError(t, err)
	want := config.Default()
	want.Input = "x.txt"
	assert.Equal(t, want, cfg)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"NegativeSteps", `input = "a"
steps = -1`, config.ErrInvalidConfig},
		{"EvenFactor", `input = "a"
tile_factor = 4`, config.ErrInvalidConfig},
		{"BadLevel", `input = "a"
log_level = "loud"`, config.ErrInvalidConfig},
		{"EmptyInput", `input = ""`, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse("garden.hcl", []byte(tc.src))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	// missing required attribute and syntax errors come from HCL diagnostics
	_, err := config.Parse("garden.hcl", []byte(`steps = 10`))
	assert.Error(t, err)
	_, err = config.Parse("garden.hcl", []byte(`input = `))
	assert.Error(t, err)
}

func TestLoadFile_RelativeInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garden.hcl")
	require.NoError(t, os.WriteFile(path, []byte("input = \"input.txt\"\nsteps = 16\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "input.txt"), cfg.Input)
	assert.Equal(t, int64(16), cfg.Steps)

	_, err = config.LoadFile(filepath.Join(dir, "missing.hcl"))
	assert.Error(t, err)
}
