package shapeindex

// Shape is the geometry capability the index consumes.
type Shape interface {
	// BB returns the axis-aligned bounding box grown by clearance on every side.
	BB(clearance float64) BB
	// Collide reports whether the shape lies within clearance of other.
	// Touching shapes collide at zero clearance.
	Collide(other Shape, clearance float64) bool
}

// Shaper is implemented by items that carry their own shape.
type Shaper interface {
	Shape() Shape
}

// ShapeFunc maps a stored item to its shape.
type ShapeFunc[T any] func(item T) Shape

// DefaultShapeFunc asks the item for its own shape.
func DefaultShapeFunc[T Shaper](item T) Shape {
	return item.Shape()
}

// outline is the common representation of the built-in shapes: a vertex
// chain in world coordinates swept by a disc of radius r. A closed outline
// is a filled ring.
type outline struct {
	verts  []Vector
	r      float64
	closed bool

	bb BB
}

func newOutline(verts []Vector, r float64, closed bool) *outline {
	o := &outline{verts: verts, r: r, closed: closed}
	o.cacheBB()
	return o
}

func (o *outline) cacheBB() {
	o.bb = NewBBForPoints(o.verts).Inflate(o.r)
}

func (o *outline) shapeOutline() *outline {
	return o
}

func (o *outline) BB(clearance float64) BB {
	return o.bb.Inflate(clearance)
}

func (o *outline) Collide(other Shape, clearance float64) bool {
	return ShapeDistance(o, other) <= clearance
}

// Radius is the rounding radius swept around the vertices.
func (o *outline) Radius() float64 {
	return o.r
}

// Translate moves the shape by delta. Indexes that already hold the shape
// keep the box they cached at insertion until it is removed and re-added.
func (o *outline) Translate(delta Vector) {
	for i := range o.verts {
		o.verts[i] = o.verts[i].Add(delta)
	}
	o.bb = o.bb.Offset(delta)
}

// edgeCount is the number of segments the outline is made of. A single
// vertex counts as one degenerate edge.
func (o *outline) edgeCount() int {
	n := len(o.verts)
	switch {
	case n <= 2:
		return 1
	case o.closed:
		return n
	default:
		return n - 1
	}
}

func (o *outline) edge(i int) (Vector, Vector) {
	n := len(o.verts)
	if n == 1 {
		return o.verts[0], o.verts[0]
	}
	return o.verts[i], o.verts[(i+1)%n]
}

type outliner interface {
	shapeOutline() *outline
}
