// Package geom provides the integer geometry primitives the router is
// built on: points, axis-aligned rectangles, and the segment tests the
// visibility graph and the grow/deflection passes rely on.
//
// Everything here is a plain value type. Rectangle's boundary rules
// follow the classic half-open convention: a point is contained in a
// rectangle if it lies on the top or left edge but not the bottom or
// right edge; Rectangle-in-Rectangle containment, by contrast, is
// inclusive on all four edges.
package geom
