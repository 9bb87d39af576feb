package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stepgarden/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openMap = `...........
.#...#..#..
...#...#...
.#.#.#...#.
.....#.....
.....S.....
..#........
.#...#.#.#.
...#...#...
.#.....#...
...........
`

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte(openMap), 0o644))
	hcl := `
input       = "input.txt"
steps       = 38
debug_steps = 6
verify      = true
log_level   = "warn"
`
	cfgPath := filepath.Join(dir, "garden.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(hcl), 0o644))

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{cfgPath})
	require.NoError(t, err)
	assert.Equal(t, "part 1: 34\n29\n245\n665\npart 2: 1289\n", out.String())
	// info records are filtered at warn level
	assert.Empty(t, logs.String())
}

func TestRun_InputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(openMap), 0o644))

	cfg, err := resolveConfig([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Input)
	assert.Equal(t, int64(config.DefaultSteps), cfg.Steps)

	var out, logs bytes.Buffer
	err = run(context.Background(), &out, &logs, []string{path})
	// 26501365 = 0 + 11·2409215, so samples run at 0, 11 and 22 steps
	require.NoError(t, err)
	assert.Contains(t, out.String(), "part 2: ")
	assert.Contains(t, logs.String(), "msg=phase")
}

func TestRun_Errors(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"a", "b"})
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), &out, &logs, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(context.Background(), &out, &logs, []string{filepath.Join(t.TempDir(), "missing.hcl")})
	assert.Error(t, err)
}

func TestResolveConfig_Default(t *testing.T) {
	cfg, err := resolveConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
