// Package quadfit fits f(k) = A·k² + B·k + C through three integer samples
// taken at k = 0, 1, 2 and evaluates it exactly for large k.
//
// The samples are reachable-plot counts at step counts Offset + k·Period.
// Solving the Vandermonde system with rows [0 0 1], [1 1 1], [4 2 1] in
// closed form gives
//
//	A = (a2 - 2·a1 + a0) / 2
//	B = a1 - a0 - A
//	C = a0
//
// so no floating point is involved. Eval uses math/big because A·K² overflows
// int64 well before K reaches the sizes puzzles ask for.
//
// Precondition: the count sequence must really be quadratic in k at the
// chosen phase. That holds for maps with open borders and clear corridors
// from the start, and is not derived here. An odd second difference is
// rejected with ErrNonQuadratic; Verify checks an extra sample when one is
// available.
//
// Errors:
//
//   - ErrNonQuadratic:   odd second difference, or an extra sample disagrees.
//   - ErrUnevenSamples:  sample step counts are not equally spaced.
//   - ErrPhaseMismatch:  the target is not Offset + K·Period for integer K ≥ 0.
package quadfit
