package geom

import (
	"fmt"
)

// Vec2 is a vector in 2D space.
type Vec2[S Float] struct {
	X S
	Y S
}

// Vec returns the vector ⟨x, y⟩.
func Vec[S Float](x, y S) Vec2[S] {
	return Vec2[S]{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[S]) Splat() (S, S) {
	return v.X, v.Y
}

func (v Vec2[S]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", float64(v.X), float64(v.Y))
}

// Dot returns the dot product of v and o.
func (v Vec2[S]) Dot(o Vec2[S]) S {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2[S]) Cross(o Vec2[S]) S {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2[S]) Hypot() S {
	return hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[S]) Hypot2() S {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (v Vec2[S]) Angle() S {
	return atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed
// in radians. With θ = 0, the result is the positive x unit vector. At π/2,
// it is the positive y unit vector.
func VecFromAngle[S Float](th S) Vec2[S] {
	sin, cos := sincos(th)
	return Vec2[S]{
		X: cos,
		Y: sin,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2[S]) Lerp(o Vec2[S], t S) Vec2[S] {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[S]) Mul(f S) Vec2[S] {
	return Vec2[S]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[S]) Negate() Vec2[S] {
	return Vec2[S]{
		X: -v.X,
		Y: -v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2[S]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2[S]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}
