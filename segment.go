package shapeindex

// Segment is a straight track: every point within r of the line from A to B.
type Segment struct {
	*outline
}

func NewSegment(a, b Vector, r float64) *Segment {
	return &Segment{outline: newOutline([]Vector{a, b}, r, false)}
}

func (seg *Segment) A() Vector {
	return seg.verts[0]
}

func (seg *Segment) B() Vector {
	return seg.verts[1]
}

// Normal is the unit normal on the right hand side of A→B.
func (seg *Segment) Normal() Vector {
	return seg.B().Sub(seg.A()).Normalize().ReversePerp()
}

func (seg *Segment) Length() float64 {
	return seg.A().Distance(seg.B())
}
