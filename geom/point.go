package geom

import (
	"fmt"
)

// Point is a point in 2D space.
type Point[S Float] struct {
	X S
	Y S
}

// Pt returns the point (x, y).
func Pt[S Float](x, y S) Point[S] {
	return Point[S]{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point[S]) Splat() (S, S) {
	return pt.X, pt.Y
}

func (pt Point[S]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(pt.X), float64(pt.Y))
}

func (pt Point[S]) Translate(o Vec2[S]) Point[S] {
	return Point[S]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point[S]) Sub(o Point[S]) Vec2[S] {
	return Vec2[S]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point[S]) Lerp(o Point[S], t S) Point[S] {
	return Point[S](Vec2[S](pt).Lerp(Vec2[S](o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point[S]) Midpoint(o Point[S]) Point[S] {
	return Point[S]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point[S]) Distance(o Point[S]) S {
	return hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point[S]) DistanceSquared(o Point[S]) S {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point[S]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point[S]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}
