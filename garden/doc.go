// Package garden runs the full step-garden pipeline: load a map, take three
// reachability samples on an arithmetic phase, fit a quadratic and
// extrapolate it to the requested step count.
//
// Pipeline
//
//  1. Read the map once (tilemap.ReadFile). It must be square.
//  2. Phase: period = map width, offset = steps mod period, unless configured.
//  3. Part 1 (DebugSteps > 0): one bounded search on the untiled map; at
//     reach.DebugSteps the reached plots are rendered to the output.
//  4. Samples at offset + k·period for k = 0, 1, 2, each on the untiled or
//     tiled map chosen by tilemap.Grid.ForSteps. With Parallel they run
//     concurrently; the map is shared read-only and every search owns its
//     own queue and sets.
//  5. Fit (quadfit.FitSamples), optionally verify with a fourth sample on the
//     wrapping plane, and evaluate at K = (steps - offset) / period.
//
// Output
//
//	[rendered map]        only when DebugSteps == reach.DebugSteps
//	part 1: <n>           only when DebugSteps > 0
//	<a0>
//	<a1>
//	<a2>
//	part 2: <n>
//
// Progress is logged with the *slog.Logger found on the context
// (internal/logctx).
package garden
