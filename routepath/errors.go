package routepath

import "errors"

// ErrUnmatchedPosition means a vertex's position relative to an obstacle
// fell through every case BuildVisibilityGraph knows how to route
// around. This should only happen for a malformed input graph (for
// example an endpoint lying strictly inside an obstacle without the
// obstacle's exclude flag set) — it is never expected in a correctly
// driven solve.
var ErrUnmatchedPosition = errors.New("routepath: vertex position relative to obstacle is unmatched")

// errNoPath is returned internally by shortestPath when the visibility
// graph has a gap: some vertex was added to the graph but never
// connected to the rest of it, so Dijkstra stalls before every vertex is
// made permanent. Solve treats this the same as a threshold miss and
// retries once with pruning disabled; if the retry also fails, Solve
// leaves the path's Points empty rather than propagating an error —
// an unroutable path is a valid, silent outcome.
var errNoPath = errors.New("routepath: visibility graph has a gap")
