package shapeindex

import "sort"

// Poly is a filled polygon, optionally rounded by radius r. Pads, zones and
// keepouts are Polys.
type Poly struct {
	*outline
}

// NewPoly transforms verts and keeps their convex hull. It panics when verts
// is empty.
func NewPoly(verts []Vector, transform Transform, r float64) *Poly {
	return NewPolyRaw(ConvexHull(transform.Points(verts)), r)
}

// NewPolyRaw uses verts as the ring without modification. The ring must be
// simple but need not be convex. It panics when verts is empty.
func NewPolyRaw(verts []Vector, r float64) *Poly {
	if len(verts) == 0 {
		panic("shapeindex: polygon needs at least one vertex")
	}
	return &Poly{outline: newOutline(append([]Vector(nil), verts...), r, true)}
}

// NewBox makes a w by h rectangle centered on center.
func NewBox(center Vector, w, h, r float64) *Poly {
	return NewBoxBB(NewBBForExtents(center, w/2.0, h/2.0), r)
}

func NewBoxBB(bb BB, r float64) *Poly {
	verts := []Vector{
		{bb.R, bb.B},
		{bb.R, bb.T},
		{bb.L, bb.T},
		{bb.L, bb.B},
	}
	return NewPolyRaw(verts, r)
}

func (poly *Poly) Count() int {
	return len(poly.verts)
}

func (poly *Poly) Vert(i int) Vector {
	return poly.verts[i]
}

// Area of the ring, ignoring the rounding radius. Positive for
// counter-clockwise winding.
func (poly *Poly) Area() float64 {
	var area float64
	n := len(poly.verts)
	for i := range poly.verts {
		area += poly.verts[i].Cross(poly.verts[(i+1)%n])
	}
	return area / 2
}

// ContainsVect reports whether p lies inside the ring.
func (poly *Poly) ContainsVect(p Vector) bool {
	return ringContains(poly.verts, p)
}

// ConvexHull returns the counter-clockwise hull of verts using a monotone
// chain. Collinear points are dropped. verts is not modified.
func ConvexHull(verts []Vector) []Vector {
	pts := append([]Vector(nil), verts...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) < 3 {
		return pts
	}

	hull := make([]Vector, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
