// Package shapeindex is a proximity index over 2D shapes.
//
// A ShapeIndex keeps one entry per item with the item's shape and the
// bounding box the shape had when it was added. Queries take a reference
// shape and a distance and report every stored item whose shape lies within
// that distance. Each candidate is first rejected on its cached bounding box
// and only then handed to the exact Shape.Collide test.
//
// Entries are scanned linearly in insertion order. The index does not own
// the items or shapes it stores and does no locking: callers serialize
// writers, and readers may share the index while no writer runs.
//
// The package also carries the small geometry layer the index is usually
// used with: Vector, BB, Transform and the Circle, Segment, Polyline and
// Poly shapes.
package shapeindex
