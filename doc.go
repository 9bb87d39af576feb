// Package stepgarden counts the garden plots reachable in exactly N steps on
// an infinitely repeating map, for N far beyond what a search can cover.
//
// How it works:
//
//	A breadth-first search over (x, y, steps) states gives exact counts for
//	small N. On a square map with an open border and clear lines from a
//	centered start, counts taken at N = offset + k·period (period = map
//	width) grow quadratically in k. Three searches therefore pin down
//	f(k) = A·k² + B·k + C, and f(K) answers any N on the same phase in O(1).
//
// Packages:
//
//	tilemap/    parse and validate maps, replicate them into odd tilings
//	reach/      exact-N step search (bounded or wrapping) and rendering
//	quadfit/    closed-form integer quadratic fit, big.Int evaluation
//	garden/     the end-to-end pipeline with logging and parallel sampling
//	config/     HCL configuration for the pipeline
//	cmd/garden  command-line entry point
//
// Quick start:
//
//	go run ./cmd/garden input.txt
//	go run ./cmd/garden garden.hcl
package stepgarden
