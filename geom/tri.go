package geom

import (
	"fmt"
)

// Tri is a triangle described by its three vertices. The order of the
// vertices is significant; it determines the triangle's winding.
type Tri[S Float] [3]Point[S]

// Vertices returns the triangle's three vertices.
func (t Tri[S]) Vertices() (Point[S], Point[S], Point[S]) {
	return t[0], t[1], t[2]
}

func (t Tri[S]) String() string {
	return fmt.Sprintf("Tri(%v, %v, %v)", t[0], t[1], t[2])
}

// Centroid returns the centroid of the triangle.
func (t Tri[S]) Centroid() Point[S] {
	return Point[S]{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}

// Area returns the signed area of the triangle. The sign follows the
// triangle's winding: it is positive when the vertices wind in the direction
// of increasing angle in a y-up coordinate system.
func (t Tri[S]) Area() S {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])) / 2
}

// Contains reports whether the triangle contains pt. Points on an edge are
// considered contained regardless of winding.
func (t Tri[S]) Contains(pt Point[S]) bool {
	d0 := t[1].Sub(t[0]).Cross(pt.Sub(t[0]))
	d1 := t[2].Sub(t[1]).Cross(pt.Sub(t[1]))
	d2 := t[0].Sub(t[2]).Cross(pt.Sub(t[2]))
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func (t Tri[S]) Translate(v Vec2[S]) Tri[S] {
	return Tri[S]{
		t[0].Translate(v),
		t[1].Translate(v),
		t[2].Translate(v),
	}
}

// IsInf reports whether at least one vertex coordinate is infinite.
func (t Tri[S]) IsInf() bool {
	return t[0].IsInf() || t[1].IsInf() || t[2].IsInf()
}

// IsNaN reports whether at least one vertex coordinate is NaN.
func (t Tri[S]) IsNaN() bool {
	return t[0].IsNaN() || t[1].IsNaN() || t[2].IsNaN()
}
