package shapeindex

import "math"

// BB is an axis-aligned bounding box. L and B are the minimum x and y,
// R and T the maximum.
type BB struct {
	L, B, R, T float64
}

func NewBB(l, b, r, t float64) BB {
	return BB{L: l, B: b, R: r, T: t}
}

// NewBBForExtents makes a box centered on c with half width hw and half height hh.
func NewBBForExtents(c Vector, hw, hh float64) BB {
	return BB{
		L: c.X - hw,
		B: c.Y - hh,
		R: c.X + hw,
		T: c.Y + hh,
	}
}

func NewBBForCircle(p Vector, r float64) BB {
	return NewBBForExtents(p, r, r)
}

// NewBBForPoints returns the smallest box holding every point in pts.
// It panics on an empty slice.
func NewBBForPoints(pts []Vector) BB {
	bb := BB{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		bb = bb.Expand(p)
	}
	return bb
}

// Intersects reports whether the boxes overlap or touch.
func (a BB) Intersects(b BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

func (bb BB) Contains(other BB) bool {
	return bb.L <= other.L && bb.R >= other.R && bb.B <= other.B && bb.T >= other.T
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

func (a BB) Merge(b BB) BB {
	return BB{
		math.Min(a.L, b.L),
		math.Min(a.B, b.B),
		math.Max(a.R, b.R),
		math.Max(a.T, b.T),
	}
}

func (bb BB) Expand(v Vector) BB {
	return BB{
		math.Min(bb.L, v.X),
		math.Min(bb.B, v.Y),
		math.Max(bb.R, v.X),
		math.Max(bb.T, v.Y),
	}
}

// Inflate grows the box by clearance on every side. A negative clearance
// shrinks it.
func (bb BB) Inflate(clearance float64) BB {
	return BB{
		bb.L - clearance,
		bb.B - clearance,
		bb.R + clearance,
		bb.T + clearance,
	}
}

func (bb BB) Center() Vector {
	return Vector{bb.L, bb.B}.Lerp(Vector{bb.R, bb.T}, 0.5)
}

func (bb BB) Width() float64 {
	return bb.R - bb.L
}

func (bb BB) Height() float64 {
	return bb.T - bb.B
}

func (bb BB) Area() float64 {
	return (bb.R - bb.L) * (bb.T - bb.B)
}

func (bb BB) Offset(v Vector) BB {
	return BB{
		bb.L + v.X,
		bb.B + v.Y,
		bb.R + v.X,
		bb.T + v.Y,
	}
}

// gap returns the separation of the two boxes along each axis, zero on an
// axis where their projections overlap or touch.
func (a BB) gap(b BB) (dx, dy float64) {
	if b.L > a.R {
		dx = b.L - a.R
	} else if a.L > b.R {
		dx = a.L - b.R
	}
	if b.B > a.T {
		dy = b.B - a.T
	} else if a.B > b.T {
		dy = a.B - b.T
	}
	return dx, dy
}

// SquaredDistance is the square of the minimum Euclidean distance between
// the two boxes. It is zero when they overlap or touch.
func (a BB) SquaredDistance(b BB) float64 {
	dx, dy := a.gap(b)
	return dx*dx + dy*dy
}

// Distance is the minimum Euclidean distance between the two boxes, measured
// between their nearest edges or corners. It is zero when they overlap or touch.
func (a BB) Distance(b BB) float64 {
	return math.Sqrt(a.SquaredDistance(b))
}
