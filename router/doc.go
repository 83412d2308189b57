// Package router owns every Obstacle and Path in a routing problem and
// drives the multi-pass solve that turns dirty paths into final,
// mutually offset point lists.
//
// Solve runs eight strictly sequential phases, matching the order and
// intent of the original routing engine this package reimplements:
// solve each dirty path's own visibility graph and shortest path;
// count how many paths touch each corner; shrink each corner's offset
// when a neighboring obstacle is close; grow obstacles and deflect
// existing segments around newly-grown corners for up to
// NumGrowPasses; label every corner INNIE or OUTIE and split
// inconsistent paths into subpaths; order paths at each shared corner
// by bend angle; materialize final integer points by applying each
// corner's offset; and recombine subpaths and bendpoint child paths
// into their user-visible parents.
//
// A Router is not safe for concurrent use: Solve is a single blocking
// call that mutates every Vertex it touches in place, and that shared
// mutation across paths is exactly how the algorithm keeps offsets
// consistent at a shared corner.
package router
