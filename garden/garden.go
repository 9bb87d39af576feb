package garden

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepgarden/config"
	"github.com/katalvlaran/stepgarden/internal/logctx"
	"github.com/katalvlaran/stepgarden/quadfit"
	"github.com/katalvlaran/stepgarden/reach"
	"github.com/katalvlaran/stepgarden/tilemap"
)

// Sentinel errors for the solver.
var (
	// ErrNotSquare indicates a map whose width and height differ.
	ErrNotSquare = errors.New("garden: map must be square")
	// ErrBeyondTiling indicates a sample whose search would hit the edge of
	// the (tiled) map and so no longer match the infinite plane.
	ErrBeyondTiling = errors.New("garden: sample exceeds the tiled map radius")
)

// Report is the outcome of Solve.
type Report struct {
	// Part1 is the DebugSteps search, nil when DebugSteps is 0.
	Part1     *reach.Result
	Samples   [3]quadfit.Sample
	Quadratic quadfit.Quadratic
	Phase     quadfit.Phase
	K         int64
	Answer    *big.Int
	// Verified is set when a fourth sample confirmed the fit.
	Verified bool
}

// Solve reads cfg.Input and runs SolveGrid.
func Solve(ctx context.Context, cfg config.Config, out io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := tilemap.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	logctx.FromContext(ctx).Info("map loaded", "path", cfg.Input, "width", g.Width(), "height", g.Height())
	return SolveGrid(ctx, g, cfg, out)
}

// SolveGrid runs the pipeline on an already loaded map and writes the
// results to out.
func SolveGrid(ctx context.Context, g *tilemap.Grid, cfg config.Config, out io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !g.Square() {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNotSquare, g.Width(), g.Height())
	}
	log := logctx.FromContext(ctx)

	phase := phaseFor(g, cfg)
	k, err := phase.Index(cfg.Steps)
	if err != nil {
		return nil, err
	}
	log.Info("phase", "offset", phase.Offset, "period", phase.Period, "k", k)

	rep := &Report{Phase: phase, K: k}

	if cfg.DebugSteps > 0 {
		if rep.Part1, err = part1(ctx, g, cfg.DebugSteps, out); err != nil {
			return nil, err
		}
	}

	if rep.Samples, err = takeSamples(ctx, g, phase, cfg); err != nil {
		return nil, err
	}
	for _, s := range rep.Samples {
		if _, err := fmt.Fprintln(out, s.Count); err != nil {
			return nil, fmt.Errorf("garden: write: %w", err)
		}
	}

	q, _, err := quadfit.FitSamples(rep.Samples)
	if err != nil {
		return nil, err
	}
	rep.Quadratic = q
	log.Info("fit", "a", q.A, "b", q.B, "c", q.C)

	if cfg.Verify {
		if err := verify(ctx, g, phase, q); err != nil {
			return nil, err
		}
		rep.Verified = true
	}

	rep.Answer = q.Eval(k)
	if _, err := fmt.Fprintf(out, "part 2: %s\n", rep.Answer); err != nil {
		return nil, fmt.Errorf("garden: write: %w", err)
	}
	return rep, nil
}

// phaseFor resolves configured or derived offset and period.
func phaseFor(g *tilemap.Grid, cfg config.Config) quadfit.Phase {
	p := quadfit.Phase{Offset: cfg.Offset, Period: cfg.Period}
	if p.Period == 0 {
		p.Period = int64(g.Width())
	}
	if p.Offset == config.DeriveOffset {
		p.Offset = cfg.Steps % p.Period
	}
	return p
}

// part1 runs the bounded search on the untiled map and renders it at
// reach.DebugSteps.
func part1(ctx context.Context, g *tilemap.Grid, steps int, out io.Writer) (*reach.Result, error) {
	res, err := reach.Search(g, steps, reach.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if steps == reach.DebugSteps {
		if err := reach.Render(out, g, res); err != nil {
			return nil, err
		}
	}
	if _, err := fmt.Fprintf(out, "part 1: %d\n", res.Count()); err != nil {
		return nil, fmt.Errorf("garden: write: %w", err)
	}
	return res, nil
}

// takeSamples searches offset + k·period for k = 0, 1, 2.
func takeSamples(ctx context.Context, g *tilemap.Grid, phase quadfit.Phase, cfg config.Config) ([3]quadfit.Sample, error) {
	var samples [3]quadfit.Sample

	// grids are resolved up front so the searches below only read shared state
	var grids [3]*tilemap.Grid
	for i := range grids {
		steps := int(phase.Steps(int64(i)))
		sg, err := g.ForSteps(steps, cfg.LoadOptions())
		if err != nil {
			return samples, err
		}
		if cx, cy := sg.Center(); steps > min(cx, cy) {
			return samples, fmt.Errorf("%w: %d steps on a %d×%d map", ErrBeyondTiling, steps, sg.Width(), sg.Height())
		}
		grids[i] = sg
	}

	if !cfg.Parallel {
		for i := range samples {
			s, err := sample(ctx, grids[i], int(phase.Steps(int64(i))))
			if err != nil {
				return samples, err
			}
			samples[i] = s
		}
		return samples, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range samples {
		eg.Go(func() error {
			s, err := sample(egCtx, grids[i], int(phase.Steps(int64(i))))
			if err != nil {
				return err
			}
			samples[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return samples, err
	}
	return samples, nil
}

// sample runs one search and logs its statistics.
func sample(ctx context.Context, g *tilemap.Grid, steps int) (quadfit.Sample, error) {
	start := time.Now()
	res, err := reach.Search(g, steps, reach.WithContext(ctx))
	if err != nil {
		return quadfit.Sample{}, fmt.Errorf("garden: sample at %d steps: %w", steps, err)
	}
	logctx.FromContext(ctx).Info("sample",
		"steps", steps,
		"count", res.Count(),
		"expanded", res.Expanded,
		"map", fmt.Sprintf("%d×%d", g.Width(), g.Height()),
		"elapsed", time.Since(start))
	return quadfit.Sample{Steps: int64(steps), Count: int64(res.Count())}, nil
}

// verify searches one period past the last sample on the wrapping plane and
// checks the count against q.
func verify(ctx context.Context, g *tilemap.Grid, phase quadfit.Phase, q quadfit.Quadratic) error {
	steps := int(phase.Steps(3))
	res, err := reach.Search(g, steps, reach.WithContext(ctx), reach.WithWrap())
	if err != nil {
		return fmt.Errorf("garden: verify at %d steps: %w", steps, err)
	}
	logctx.FromContext(ctx).Info("verify", "steps", steps, "count", res.Count(), "predicted", q.Eval(3))
	return quadfit.Verify(q, 3, int64(res.Count()))
}
