package shapeindex

import "math"

// Polyline is an open chain of tracks of radius r joined at the vertices.
type Polyline struct {
	*outline
}

// NewPolyline panics when verts is empty.
func NewPolyline(verts []Vector, r float64) *Polyline {
	if len(verts) == 0 {
		panic("shapeindex: polyline needs at least one vertex")
	}
	return &Polyline{outline: newOutline(append([]Vector(nil), verts...), r, false)}
}

// Verts returns a copy of the chain.
func (pl *Polyline) Verts() []Vector {
	return append([]Vector(nil), pl.verts...)
}

// IsClosed reports whether the chain ends where it starts.
func (pl *Polyline) IsClosed() bool {
	return len(pl.verts) > 1 && pl.verts[0].Equal(pl.verts[len(pl.verts)-1])
}

func (pl *Polyline) Length() float64 {
	var length float64
	for i := 1; i < len(pl.verts); i++ {
		length += pl.verts[i-1].Distance(pl.verts[i])
	}
	return length
}

func sharpness(a, b, c Vector) float64 {
	return a.Sub(b).Normalize().Dot(c.Sub(b).Normalize())
}

// SimplifyVertexes joins adjacent segments whose direction differs by less
// than tol radians and returns the reduced chain. The receiver is unchanged.
func (pl *Polyline) SimplifyVertexes(tol float64) *Polyline {
	if len(pl.verts) < 3 {
		return NewPolyline(pl.verts, pl.r)
	}

	reduced := []Vector{pl.verts[0], pl.verts[1]}
	minSharp := -math.Cos(tol)

	for _, vert := range pl.verts[2:] {
		n := len(reduced)
		if sharpness(reduced[n-2], reduced[n-1], vert) <= minSharp {
			reduced[n-1] = vert
		} else {
			reduced = append(reduced, vert)
		}
	}

	// A closed chain may also be straight through its start vertex.
	if n := len(reduced); pl.IsClosed() && n > 3 && sharpness(reduced[n-2], reduced[0], reduced[1]) <= minSharp {
		reduced = append(reduced[1:n-1], reduced[1])
	}
	return NewPolyline(reduced, pl.r)
}
