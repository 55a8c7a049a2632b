package shapeindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxShape is a Shape the package knows nothing about.
type boxShape struct {
	bb BB
}

func (s boxShape) BB(clearance float64) BB {
	return s.bb.Inflate(clearance)
}

func (s boxShape) Collide(other Shape, clearance float64) bool {
	return s.bb.Distance(other.BB(0)) <= clearance
}

func TestShapeDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want float64
	}{
		{"circles apart", NewCircle(Vector{0, 0}, 1), NewCircle(Vector{5, 0}, 2), 2},
		{"circles touching", NewCircle(Vector{0, 0}, 1), NewCircle(Vector{3, 0}, 2), 0},
		{"circle and track", NewCircle(Vector{5, 5}, 1), NewSegment(Vector{0, 0}, Vector{10, 0}, 0.5), 3.5},
		{"track past the end", NewSegment(Vector{0, 0}, Vector{10, 0}, 0), NewCircle(Vector{13, 4}, 0), 5},
		{"parallel tracks", NewSegment(Vector{0, 0}, Vector{10, 0}, 1), NewSegment(Vector{0, 5}, Vector{10, 5}, 1), 3},
		{"box and far box", NewBoxBB(NewBB(0, 0, 10, 10), 0), NewBoxBB(NewBB(13, 14, 20, 20), 0), 5},
		{"rounded boxes", NewBoxBB(NewBB(0, 0, 10, 10), 1), NewBoxBB(NewBB(20, 0, 30, 10), 2), 7},
		{"polyline around box", NewBoxBB(NewBB(0, 0, 10, 10), 0), NewPolyline([]Vector{{5, 15}, {15, 15}, {15, 5}}, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShapeDistance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, ShapeDistance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestShapeDistance_Overlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
	}{
		{"crossing tracks", NewSegment(Vector{0, 0}, Vector{10, 10}, 0), NewSegment(Vector{0, 10}, Vector{10, 0}, 0)},
		{"collinear tracks", NewSegment(Vector{0, 0}, Vector{10, 0}, 0), NewSegment(Vector{5, 0}, Vector{15, 0}, 0)},
		{"circle inside box", NewBoxBB(NewBB(0, 0, 10, 10), 0), NewCircle(Vector{5, 5}, 1)},
		{"box inside box", NewBoxBB(NewBB(0, 0, 10, 10), 0), NewBoxBB(NewBB(2, 2, 3, 3), 0)},
		{"box inside circle", NewCircle(Vector{0, 0}, 100), NewBoxBB(NewBB(10, 10, 12, 12), 0)},
		{"track through box", NewBoxBB(NewBB(0, 0, 10, 10), 0), NewSegment(Vector{-5, 5}, Vector{15, 5}, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.LessOrEqual(t, ShapeDistance(tt.a, tt.b), 0.0)
			assert.True(t, tt.a.Collide(tt.b, 0))
			assert.True(t, tt.b.Collide(tt.a, 0))
		})
	}
}

func TestShape_Collide(t *testing.T) {
	a := NewCircle(Vector{0, 0}, 1)
	b := NewCircle(Vector{5, 0}, 1)

	assert.False(t, a.Collide(b, 2.9))
	assert.True(t, a.Collide(b, 3))
	assert.True(t, a.Collide(b, 4))
}

func TestShape_ConcavePoly(t *testing.T) {
	// U shape open at the top; the notch is empty.
	u := NewPolyRaw([]Vector{{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30}}, 0)
	inNotch := NewCircle(Vector{15, 20}, 1)
	inArm := NewCircle(Vector{5, 20}, 1)

	assert.InDelta(t, 4, ShapeDistance(u, inNotch), 1e-9)
	assert.True(t, u.Collide(inArm, 0))
	assert.True(t, u.ContainsVect(Vector{25, 25}))
	assert.False(t, u.ContainsVect(Vector{15, 25}))
}

func TestShape_ForeignShapeUsesBoxes(t *testing.T) {
	c := NewCircle(Vector{0, 0}, 5)
	foreign := boxShape{NewBB(4, 4, 6, 6)}

	// The boxes touch even though the disc does not reach the corner.
	assert.Equal(t, 0.0, ShapeDistance(c, foreign))
	assert.True(t, c.Collide(foreign, 0))
}

func TestShape_BB(t *testing.T) {
	assert.Equal(t, NewBB(-1, -1, 1, 1), NewCircle(Vector{}, 1).BB(0))
	assert.Equal(t, NewBB(-3, -3, 3, 3), NewCircle(Vector{}, 1).BB(2))
	assert.Equal(t, NewBB(-1, -2, 11, 2), NewSegment(Vector{0, -1}, Vector{10, 1}, 1).BB(0))
	assert.Equal(t, NewBB(0, 0, 10, 10), NewBox(Vector{5, 5}, 10, 10, 0).BB(0))
}

func TestShape_Translate(t *testing.T) {
	c := NewCircle(Vector{0, 0}, 1)
	c.Translate(Vector{10, 0})

	assert.Equal(t, Vector{10, 0}, c.Center())
	assert.Equal(t, NewBB(9, -1, 11, 1), c.BB(0))

	c.SetRadius(2)
	assert.Equal(t, NewBB(8, -2, 12, 2), c.BB(0))
}

func TestSegment(t *testing.T) {
	seg := NewSegment(Vector{0, 0}, Vector{3, 4}, 0)
	assert.Equal(t, 5.0, seg.Length())
	assertVectorNear(t, Vector{0.8, -0.6}, seg.Normal())
}

func TestConvexHull(t *testing.T) {
	verts := []Vector{{0, 0}, {5, 5}, {10, 0}, {10, 10}, {0, 10}, {5, 0}, {2, 7}}
	hull := ConvexHull(verts)

	require.Len(t, hull, 4)
	assert.ElementsMatch(t, []Vector{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, hull)
	assert.Equal(t, Vector{5, 5}, verts[1], "input is untouched")

	poly := NewPolyRaw(hull, 0)
	assert.Equal(t, 100.0, poly.Area(), "hull winds counter-clockwise")
}

func TestNewPoly_Transform(t *testing.T) {
	tri := NewPoly([]Vector{{0, 0}, {2, 0}, {0, 2}}, NewTransformTranslate(Vector{10, 10}), 0)
	require.Equal(t, 3, tri.Count())
	assert.Equal(t, NewBB(10, 10, 12, 12), tri.BB(0))
	assert.InDelta(t, 2, math.Abs(tri.Area()), 1e-9)

	assert.Panics(t, func() { NewPoly(nil, NewTransformIdentity(), 0) })
}

func TestPolyline(t *testing.T) {
	pl := NewPolyline([]Vector{{0, 0}, {5, 0}, {10, 0}, {10, 10}}, 0.5)
	assert.False(t, pl.IsClosed())
	assert.Equal(t, 20.0, pl.Length())

	simple := pl.SimplifyVertexes(0.01)
	assert.Equal(t, []Vector{{0, 0}, {10, 0}, {10, 10}}, simple.Verts())
	assert.Equal(t, 0.5, simple.Radius())
	assert.Len(t, pl.Verts(), 4)

	assert.Panics(t, func() { NewPolyline(nil, 1) })
}

func TestPolyline_SimplifyClosed(t *testing.T) {
	// Square whose start vertex sits in the middle of the bottom edge.
	pl := NewPolyline([]Vector{{5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}, {5, 0}}, 0)
	require.True(t, pl.IsClosed())

	simple := pl.SimplifyVertexes(0.01)
	assert.Equal(t, []Vector{{10, 0}, {10, 10}, {0, 10}, {0, 0}, {10, 0}}, simple.Verts())
	assert.True(t, simple.IsClosed())
}
