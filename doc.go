// Package orthoroute (orthoroute) routes orthogonal connectors around
// rectangular obstacles for diagram editors.
//
// 🚀 What is orthoroute?
//
//	A small, zero-runtime-dependency library that turns a set of
//	axis-aligned obstacles and a start/end pair into a polyline that:
//
//	  • never crosses an obstacle's interior
//	  • bends only at obstacle corners or your own bendpoints
//	  • fans multiple paths sharing a corner out to distinct offsets
//
// ✨ Why choose orthoroute?
//
//   - Deterministic   — identical input always produces identical output
//   - Incremental     — add/remove obstacles and paths, re-solve only
//     what changed
//   - Pure Go         — no cgo, no external services
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/      — integer point, rectangle, and segment primitives
//	core/      — shared Obstacle and Vertex routing state
//	routepath/ — a single path's visibility graph and shortest path
//	router/    — the multi-pass solve across every obstacle and path
//
// Quick example:
//
//	points, err := orthoroute.SolveFor(
//	    [][4]int{{4, 0, 2, 10}},          // one obstacle at (4,0) 2x10
//	    nil,                               // no bendpoints
//	    0, 5, 10, 5,                        // start, end
//	)
//
// For incremental use across many solves, construct a router.Router
// directly instead of calling SolveFor repeatedly.
//
//	go get github.com/katalvlaran/orthoroute
package orthoroute
