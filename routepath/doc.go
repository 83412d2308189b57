// Package routepath implements a single routing request: a Path from a
// start Vertex to an end Vertex, the visibility graph built against the
// router's current obstacles, and the per-path Dijkstra variant that
// turns that graph into an ordered vertex chain.
//
// Visibility-graph construction (BuildVisibilityGraph) grows the graph
// lazily: it starts from a single start→end work item and only pulls in
// an obstacle's corners once a candidate segment actually needs to route
// around it. The work stack holds a tagged workItem{A, B, ExcludeA,
// ExcludeB} instead of the untyped mixed tuples a naive port would use
// (spec's "dynamically-typed stacks used polymorphically" redesign
// note) — ExcludeA/ExcludeB are nil-able so a plain Go struct covers
// both the "segment has no exclusions" and "segment belongs to this
// obstacle's own perimeter" cases.
//
// Dijkstra (shortestPath) intentionally does not use a heap. Spec calls
// for linear-scan selection of the next vertex, which is a load-bearing,
// testable property (deterministic tie-breaking across runs with
// identical input) rather than a performance shortcut — see the
// dijkstra package's runner idiom this is grounded on, and DESIGN.md for
// why a priority queue is not substituted in.
//
// Complexity: visibility-graph construction is O(B^2) in the number of
// obstacles actually pulled in (B), since every newly visible obstacle
// is paired against every other visible one; Dijkstra is O(V^2) in the
// number of visible vertices V because of the linear scan. Both are
// bounded in practice by the threshold-oval pruning in
// computeThreshold/withinThreshold.
package routepath
