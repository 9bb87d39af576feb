// Package reach counts the garden plots reachable in exactly N steps from the
// center of a tilemap.Grid.
//
// What
//
//   - Breadth-first search over states (x, y, steps), seeded with the grid
//     center at step 0.
//   - A state whose step count equals the target is recorded and not
//     expanded; any other state enqueues its in-bounds, rock-free left, right,
//     up and down neighbors with steps+1.
//   - A state is expanded at most once. The same position at a different step
//     count is a different state, because the question is "reachable in
//     exactly N steps", not "within N steps".
//   - Render prints the grid with every reached plot marked 'O'.
//
// Why
//
//   - Exact-N reachability on a grid is the sample generator for the
//     quadratic extrapolation in package quadfit.
//
// Bounded and wrapping modes
//
//	By default the search stops at the grid border: an out-of-range neighbor is
//	never enqueued. The infinite plane is approximated by searching a tiled
//	grid (see tilemap.Grid.Tile). WithWrap instead treats the grid as one tile
//	of an infinite plane; positions may then leave [0,W)×[0,H) and cells are
//	looked up modulo the grid size.
//
// Complexity
//
//   - Time:   O(W×H×(N+1)) states in the worst case, each expanded once.
//   - Memory: O(W×H) for the visited layer and the queue.
//
// Options
//
//   - WithContext(ctx):  cancellation.
//   - WithWrap():        infinite-plane neighbors.
//   - WithOnEnqueue(fn): hook before a state is queued.
//   - WithOnVisit(fn):   hook when a state is first expanded; an error aborts.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrNegativeSteps    if the target is negative.
//   - ErrOptionViolation  if an Option is invalid.
//   - Context errors and wrapped OnVisit errors.
package reach
