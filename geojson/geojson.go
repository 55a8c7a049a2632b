// Package geojson turns GeoJSON layers into indexable shapes.
//
// Points become circles, LineStrings become polylines and Polygons become
// filled polygons built from their outer ring. Sizes come from feature
// properties: "radius" for points and "width" for lines.
package geojson

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/jakecoffman/shapeindex"
)

var (
	ErrUnsupportedGeometry = errors.New("geojson: unsupported geometry")
	ErrEmptyGeometry       = errors.New("geojson: empty geometry")
	ErrBoundMismatch       = errors.New("geojson: shape bounds do not match geometry")
)

// boundTolerance is relative to the coordinate magnitude.
const boundTolerance = 1e-9

// Feature is one decoded GeoJSON feature. It implements shapeindex.Shaper.
type Feature struct {
	ID         string
	Properties geojson.Properties

	shape shapeindex.Shape
}

func (f *Feature) Shape() shapeindex.Shape {
	return f.shape
}

type Option func(*decoder)

type decoder struct {
	radius   float64
	simplify float64
	logger   *zap.Logger
}

// WithDefaultRadius sets the radius used for points and lines that carry no
// size property.
func WithDefaultRadius(r float64) Option {
	return func(d *decoder) {
		d.radius = r
	}
}

// WithSimplify merges line segments whose direction changes by less than tol
// radians.
func WithSimplify(tol float64) Option {
	return func(d *decoder) {
		d.simplify = tol
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Load reads and decodes a FeatureCollection file.
func Load(path string, opts ...Option) ([]*Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layer: %w", err)
	}
	return Decode(data, opts...)
}

// Decode parses a FeatureCollection. The first feature that cannot be
// converted aborts decoding.
func Decode(data []byte, opts ...Option) ([]*Feature, error) {
	d := decoder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&d)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing feature collection: %w", err)
	}

	features := make([]*Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := featureID(f, i)
		shape, err := d.shape(f)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", id, err)
		}
		features = append(features, &Feature{ID: id, Properties: f.Properties, shape: shape})
	}

	d.logger.Debug("decoded layer", zap.Int("features", len(features)))
	return features, nil
}

func featureID(f *geojson.Feature, i int) string {
	if f.ID != nil {
		return fmt.Sprint(f.ID)
	}
	if ref := f.Properties.MustString("ref", ""); ref != "" {
		return ref
	}
	return fmt.Sprintf("feature-%d", i)
}

func (d *decoder) shape(f *geojson.Feature) (shapeindex.Shape, error) {
	if f.Geometry == nil {
		return nil, ErrEmptyGeometry
	}
	switch g := f.Geometry.(type) {
	case orb.Point:
		return ShapeFromGeometry(g, f.Properties.MustFloat64("radius", d.radius))
	case orb.LineString:
		r := f.Properties.MustFloat64("width", 2*d.radius) / 2
		s, err := ShapeFromGeometry(g, r)
		if err != nil || d.simplify <= 0 {
			return s, err
		}
		return s.(*shapeindex.Polyline).SimplifyVertexes(d.simplify), nil
	default:
		return ShapeFromGeometry(g, 0)
	}
}

// ShapeFromGeometry converts a single geometry. Polygon holes are ignored:
// the outer ring is filled. The shape's bounds, less r, must agree with
// g.Bound() or ErrBoundMismatch is returned.
func ShapeFromGeometry(g orb.Geometry, r float64) (shapeindex.Shape, error) {
	shape, err := shapeFromGeometry(g, r)
	if err != nil {
		return nil, err
	}
	if err := checkBound(shape, g, r); err != nil {
		return nil, err
	}
	return shape, nil
}

func shapeFromGeometry(g orb.Geometry, r float64) (shapeindex.Shape, error) {
	switch g := g.(type) {
	case orb.Point:
		return shapeindex.NewCircle(vector(g), r), nil
	case orb.LineString:
		if len(g) == 0 {
			return nil, ErrEmptyGeometry
		}
		return shapeindex.NewPolyline(vectors(g), r), nil
	case orb.Ring:
		return ringShape(g, r)
	case orb.Polygon:
		if len(g) == 0 {
			return nil, ErrEmptyGeometry
		}
		return ringShape(g[0], r)
	case orb.Bound:
		return shapeindex.NewBoxBB(BB(g), r), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}

// checkBound compares the shape's box, shrunk by r, with the geometry's own
// bound.
func checkBound(shape shapeindex.Shape, g orb.Geometry, r float64) error {
	got := shape.BB(0).Inflate(-r)
	want := BB(g.Bound())
	if !near(got.L, want.L) || !near(got.B, want.B) || !near(got.R, want.R) || !near(got.T, want.T) {
		return fmt.Errorf("%w: %s has %v, shape has %v", ErrBoundMismatch, g.GeoJSONType(), want, got)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= boundTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func ringShape(ring orb.Ring, r float64) (shapeindex.Shape, error) {
	// GeoJSON rings repeat the first point at the end.
	if ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	if len(ring) == 0 {
		return nil, ErrEmptyGeometry
	}
	return shapeindex.NewPolyRaw(vectors(ring), r), nil
}

func vector(p orb.Point) shapeindex.Vector {
	return shapeindex.Vector{X: p.X(), Y: p.Y()}
}

func vectors[P ~[]orb.Point](pts P) []shapeindex.Vector {
	out := make([]shapeindex.Vector, len(pts))
	for i, p := range pts {
		out[i] = vector(p)
	}
	return out
}

// BB converts an orb bound.
func BB(b orb.Bound) shapeindex.BB {
	return shapeindex.NewBB(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}

// Bound converts a bounding box back to an orb bound.
func Bound(bb shapeindex.BB) orb.Bound {
	return orb.Bound{Min: orb.Point{bb.L, bb.B}, Max: orb.Point{bb.R, bb.T}}
}

// Index builds a shape index over features in their decoded order.
func Index(features []*Feature, opts ...shapeindex.Option) *shapeindex.ShapeIndex[*Feature] {
	index := shapeindex.New[*Feature](append([]shapeindex.Option{shapeindex.WithCapacity(len(features))}, opts...)...)
	for _, f := range features {
		index.Add(f)
	}
	return index
}
