package geom

// Rect is an axis-aligned rectangle, stored as the coordinates of two
// opposite corners.
type Rect[S Float] struct {
	X0, Y0 S
	X1, Y1 S
}

// NewRect returns the rectangle with corners (x0, y0) and (x1, y1).
func NewRect[S Float](x0, y0, x1, y1 S) Rect[S] {
	return Rect[S]{x0, y0, x1, y1}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints[S Float](p0, p1 Point[S]) Rect[S] {
	return Rect[S]{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given width and height,
// centered around the center point.
func NewRectFromCenter[S Float](center Point[S], width, height S) Rect[S] {
	return Rect[S]{
		X0: center.X - width/2,
		Y0: center.Y - height/2,
		X1: center.X + width/2,
		Y1: center.Y + height/2,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect[S]) Abs() Rect[S] {
	return Rect[S]{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect[S]) MinX() S { return min(r.X0, r.X1) }
func (r Rect[S]) MaxX() S { return max(r.X0, r.X1) }
func (r Rect[S]) MinY() S { return min(r.Y0, r.Y1) }
func (r Rect[S]) MaxY() S { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect[S]) Width() S {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect[S]) Height() S {
	return r.Y1 - r.Y0
}

func (r Rect[S]) Center() Point[S] {
	return Point[S]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect[S]) Contains(pt Point[S]) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect[S]) Union(o Rect[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
//
// The result is valid only if width and height are non-negative.
func (r Rect[S]) UnionPoint(pt Point[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// IsInf reports whether at least one of the rectangle's coordinates is
// infinite.
func (r Rect[S]) IsInf() bool {
	return isInf(r.X0) || isInf(r.Y0) || isInf(r.X1) || isInf(r.Y1)
}

// IsNaN reports whether at least one of the rectangle's coordinates is NaN.
func (r Rect[S]) IsNaN() bool {
	return isNaN(r.X0) || isNaN(r.Y0) || isNaN(r.X1) || isNaN(r.Y1)
}
