// Package geom provides 2D geometric primitives for approximating ellipses
// and circles as polygons.
//
// # Ellipses and sections
//
// [Ellipse] describes an axis-aligned ellipse by its bounding rectangle and
// a resolution, the number of sides of the approximating polygon. [Section]
// describes an angular slice of an ellipse's circumference. Both are plain
// value types; all computation happens in the iterators they produce.
//
// # Iterators
//
// [Circumference] lazily yields the points of an ellipse's (or section's)
// circumference, evenly spaced in angle. [Triangles] consumes a
// circumference pairwise and yields a triangle fan around the ellipse's
// middle, suitable for filling the ellipse with a mesh. Neither iterator
// allocates; both know their exact remaining length at all times, which
// allows consumers to size buffers up front.
//
// The iterators are explicit cursors with a Next method. For composition
// with range-over-func loops and [slices.Collect], both also provide an
// [iter.Seq] view ([Circumference.Points] and [Triangles.All]).
//
// # Scalars
//
// All types are generic over the [Float] scalar constraint, so geometry can
// be produced directly in float32 for graphics APIs or in float64 for
// precision-sensitive work.
package geom
