package shapeindex

// Circle is a filled disc, typically a via or a round pad.
type Circle struct {
	*outline
}

func NewCircle(center Vector, radius float64) *Circle {
	return &Circle{outline: newOutline([]Vector{center}, radius, false)}
}

func (circle *Circle) Center() Vector {
	return circle.verts[0]
}

// SetRadius changes the radius in place. See Translate for how this interacts
// with indexes holding the circle.
func (circle *Circle) SetRadius(r float64) {
	circle.r = r
	circle.cacheBB()
}
