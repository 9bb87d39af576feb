// Command garden counts the garden plots reachable in exactly N steps on an
// infinitely tiled map.
//
// Usage:
//
//	garden [PATH]
//
// PATH is the puzzle map (default input.txt) or an HCL config file ending in
// ".hcl" (see package config). Results go to stdout, logs to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/stepgarden/config"
	"github.com/katalvlaran/stepgarden/garden"
	"github.com/katalvlaran/stepgarden/internal/logctx"
)

// errUsage is returned for more than one argument.
var errUsage = errors.New("usage: garden [input.txt | config.hcl]")

// main is the entrypoint for the garden command.
func main() {
	// Use a minimal logger until the configured level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run resolves the configuration, installs the logger and solves.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx = logctx.WithLogger(ctx, logger)

	_, err = garden.Solve(ctx, cfg, outW)
	return err
}

// resolveConfig maps the optional argument to a Config.
func resolveConfig(args []string) (config.Config, error) {
	switch len(args) {
	case 0:
		return config.Default(), nil
	case 1:
		if filepath.Ext(args[0]) == ".hcl" {
			return config.LoadFile(args[0])
		}
		cfg := config.Default()
		cfg.Input = args[0]
		return cfg, nil
	default:
		return config.Config{}, errUsage
	}
}
