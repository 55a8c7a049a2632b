package shapeindex

import "math"

// ShapeDistance returns the gap between the surfaces of a and b. It is zero
// or negative when they touch or overlap.
//
// Built-in shapes are measured exactly. When either side is a foreign Shape
// implementation only the bounding boxes are compared.
func ShapeDistance(a, b Shape) float64 {
	oa, okA := a.(outliner)
	ob, okB := b.(outliner)
	if !okA || !okB {
		return a.BB(0).Distance(b.BB(0))
	}
	return outlineDistance(oa.shapeOutline(), ob.shapeOutline())
}

func outlineDistance(a, b *outline) float64 {
	radii := a.r + b.r

	// With no crossing edges, one outline is either entirely inside a filled
	// ring or entirely outside it, so one vertex decides.
	if a.closed && ringContains(a.verts, b.verts[0]) {
		return -radii
	}
	if b.closed && ringContains(b.verts, a.verts[0]) {
		return -radii
	}

	best := math.Inf(1)
	for i := 0; i < a.edgeCount(); i++ {
		a0, a1 := a.edge(i)
		for j := 0; j < b.edgeCount(); j++ {
			b0, b1 := b.edge(j)
			if d := segmentDistanceSq(a0, a1, b0, b1); d < best {
				best = d
				if best == 0 {
					return -radii
				}
			}
		}
	}
	return math.Sqrt(best) - radii
}

// segmentDistanceSq is the squared distance between segments ab and cd.
func segmentDistanceSq(a, b, c, d Vector) float64 {
	if segmentsIntersect(a, b, c, d) {
		return 0
	}
	return math.Min(
		math.Min(c.DistanceSq(c.ClosestPointOnSegment(a, b)), d.DistanceSq(d.ClosestPointOnSegment(a, b))),
		math.Min(a.DistanceSq(a.ClosestPointOnSegment(c, d)), b.DistanceSq(b.ClosestPointOnSegment(c, d))),
	)
}

func orientation(a, b, c Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether p, known to be collinear with ab, lies within its extent.
func onSegment(a, b, p Vector) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func segmentsIntersect(a, b, c, d Vector) bool {
	d1 := orientation(c, d, a)
	d2 := orientation(c, d, b)
	d3 := orientation(a, b, c)
	d4 := orientation(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(c, d, a):
		return true
	case d2 == 0 && onSegment(c, d, b):
		return true
	case d3 == 0 && onSegment(a, b, c):
		return true
	case d4 == 0 && onSegment(a, b, d):
		return true
	}
	return false
}

// ringContains is an even-odd crossing test. Points on the boundary may go
// either way; callers measure edges separately.
func ringContains(ring []Vector, p Vector) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := range ring {
		vi, vj := ring[i], ring[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			x := vj.X + (p.Y-vj.Y)*(vi.X-vj.X)/(vi.Y-vj.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
