// Package core defines the two entities the router mutates across a
// solve: Obstacle and Vertex.
//
// Obstacle is a rectangle plus its four corner Vertices. Vertex carries
// both the per-path shortest-path search state (neighbors, label, cost)
// and the routing state that accumulates across every path in a solve
// (type, offset, usage counts). The four corner Vertices of one Obstacle
// are shared pointers: every Path that bends at a given corner sees and
// mutates the same Vertex, which is exactly how the router keeps
// multiple paths consistent at a shared corner without a separate
// synchronization layer (the router itself is single-threaded and
// synchronous; see the router package).
//
// A Vertex that belongs to a Path endpoint rather than an Obstacle
// corner has a nil Obstacle field. Vertex.Paths holds PathID values
// rather than pointers to the routepath package's Path type: core must
// not import routepath (routepath already imports core for Obstacle and
// Vertex), and a stable integer ID is what spec's cyclic-reference
// redesign note asks for in place of a back-pointer.
package core
