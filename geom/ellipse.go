package geom

import (
	"iter"
	"math"
)

// Ellipse is an axis-aligned ellipse described by its bounding rectangle and
// a resolution, the number of sides used when approximating the ellipse as a
// polygon.
type Ellipse[S Float] struct {
	// The rectangle bounding the ellipse.
	Rect Rect[S]
	// The resolution (number of sides) of the ellipse.
	Resolution int
}

// NewEllipse returns an ellipse from its bounding rect and resolution
// (number of sides).
func NewEllipse[S Float](rect Rect[S], resolution int) Ellipse[S] {
	return Ellipse[S]{Rect: rect, Resolution: resolution}
}

// NewCircle returns the circle with the given center and radius as an
// [Ellipse].
func NewCircle[S Float](center Point[S], radius S, resolution int) Ellipse[S] {
	return Ellipse[S]{
		Rect:       NewRectFromCenter(center, 2*radius, 2*radius),
		Resolution: resolution,
	}
}

// Section returns an angular section of the ellipse.
//
// offsetRadians is the angle at which the section begins, and
// sectionRadians is the angle covered by the section.
func (e Ellipse[S]) Section(offsetRadians, sectionRadians S) Section[S] {
	return Section[S]{
		Ellipse:        e,
		OffsetRadians:  offsetRadians,
		SectionRadians: sectionRadians,
	}
}

// Circumference returns an iterator yielding the points of the ellipse
// circumference.
func (e Ellipse[S]) Circumference() Circumference[S] {
	return NewCircumference(e.Rect, e.Resolution)
}

// Triangles returns an iterator yielding the triangles that describe the
// ellipse. See [Triangles.Next] for the vertex order.
func (e Ellipse[S]) Triangles() Triangles[S] {
	return e.Circumference().Triangles()
}

// Section is an angular subsection of an [Ellipse].
type Section[S Float] struct {
	// The ellipse from which this section is produced.
	Ellipse Ellipse[S]
	// The angle in radians at which the section starts.
	OffsetRadians S
	// The angle in radians covered by the section.
	SectionRadians S
}

// Circumference returns an iterator yielding the points of the section's
// circumference.
func (s Section[S]) Circumference() Circumference[S] {
	return NewCircumference(s.Ellipse.Rect, s.Ellipse.Resolution).
		WithSpan(s.SectionRadians).
		WithOffset(s.OffsetRadians)
}

// Triangles returns an iterator yielding the triangles that describe the
// section. See [Triangles.Next] for the vertex order.
func (s Section[S]) Triangles() Triangles[S] {
	return s.Circumference().Triangles()
}

// Circumference is an iterator yielding the edges of an ellipse (or a
// section of an ellipse) as a series of points.
//
// A Circumference is a single-consumer cursor: it is advanced by [Circumference.Next]
// and exhausted once Next has reported false. It is not restartable;
// construct a fresh one to iterate again.
type Circumference[S Float] struct {
	index     int
	numPoints int
	middle    Point[S]
	radStep   S
	radOffset S
	halfW     S
	halfH     S
}

// NewCircumference returns an iterator yielding the points of an ellipse's
// full circumference. It yields resolution+1 points; the last point revisits
// the start angle so that the polygon closes.
//
// resolution is clamped to a minimum of 1 to avoid creating a Circumference
// that produces NaN values.
func NewCircumference[S Float](rect Rect[S], resolution int) Circumference[S] {
	resolution = max(resolution, 1)
	return NewCircumferenceSection(rect, resolution, S(2*math.Pi))
}

// NewCircumferenceSection returns an iterator that yields only a section of
// an ellipse's circumference, where the section is described via its angle
// in radians.
//
// resolution is clamped to a minimum of 1 to avoid creating a Circumference
// that produces NaN values.
func NewCircumferenceSection[S Float](rect Rect[S], resolution int, radians S) Circumference[S] {
	resolution = max(resolution, 1)
	return newCircumference(rect, resolution+1, radians/S(resolution))
}

func newCircumference[S Float](rect Rect[S], numPoints int, radStep S) Circumference[S] {
	return Circumference[S]{
		numPoints: numPoints,
		middle:    rect.Center(),
		halfW:     rect.Width() / 2,
		halfH:     rect.Height() / 2,
		radStep:   radStep,
	}
}

// WithSpan returns a copy of c covering only radians of the circumference.
// The number of points is preserved; the angular step between them is
// re-derived from the new span.
func (c Circumference[S]) WithSpan(radians S) Circumference[S] {
	resolution := c.numPoints - 1
	c.radStep = radians / S(resolution)
	return c
}

// WithOffset returns a copy of c that starts yielding points at the given
// angle in radians.
//
// This is particularly useful for yielding a different section of the
// circumference when combined with [Circumference.WithSpan].
func (c Circumference[S]) WithOffset(radians S) Circumference[S] {
	c.radOffset = radians
	return c
}

// Next returns the next point of the circumference and advances the cursor.
// The second return value reports whether a point was produced; once it is
// false the circumference is exhausted.
func (c *Circumference[S]) Next() (Point[S], bool) {
	if c.index >= c.numPoints {
		return Point[S]{}, false
	}
	sin, cos := sincos(c.radOffset + c.radStep*S(c.index))
	c.index++
	return Point[S]{
		X: c.middle.X + c.halfW*cos,
		Y: c.middle.Y + c.halfH*sin,
	}, true
}

// Len returns the exact number of points remaining.
func (c Circumference[S]) Len() int {
	return c.numPoints - c.index
}

// Points returns an iterator over the points remaining in c at the time of
// the call. The returned iterator owns its own cursor; c itself is not
// advanced.
func (c Circumference[S]) Points() iter.Seq[Point[S]] {
	return func(yield func(Point[S]) bool) {
		for {
			pt, ok := c.Next()
			if !ok || !yield(pt) {
				return
			}
		}
	}
}

// Triangles returns an iterator yielding triangles that are created by
// joining each edge yielded by c to the middle of the ellipse.
func (c Circumference[S]) Triangles() Triangles[S] {
	last, ok := c.Next()
	if !ok {
		last = c.middle
	}
	return Triangles[S]{last: last, points: c}
}

// Triangles is an iterator yielding the triangles that describe an ellipse
// or a section of an ellipse as a fan around its middle.
//
// Like [Circumference], it is a single-consumer cursor.
type Triangles[S Float] struct {
	// The last point yielded by the inner circumference.
	last Point[S]
	// The circumference points from which triangles are produced.
	points Circumference[S]
}

// Next returns the next triangle of the fan and advances the cursor. The
// vertices of each triangle are ordered (middle, previous circumference
// point, current circumference point), so consecutive triangles share an
// edge and all triangles share the middle vertex.
func (t *Triangles[S]) Next() (Tri[S], bool) {
	next, ok := t.points.Next()
	if !ok {
		return Tri[S]{}, false
	}
	tri := Tri[S]{t.points.middle, t.last, next}
	t.last = next
	return tri, true
}

// Len returns the exact number of triangles remaining.
func (t Triangles[S]) Len() int {
	return t.points.Len()
}

// All returns an iterator over the triangles remaining in t at the time of
// the call. The returned iterator owns its own cursor; t itself is not
// advanced.
func (t Triangles[S]) All() iter.Seq[Tri[S]] {
	return func(yield func(Tri[S]) bool) {
		for {
			tri, ok := t.Next()
			if !ok || !yield(tri) {
				return
			}
		}
	}
}
