package shapeindex

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// ShapeEntry is the index's record of one item. Shape and BB are captured
// when the item is added and never refreshed, so moving a shape while it is
// indexed leaves a stale box behind: remove and re-add it instead.
type ShapeEntry[T comparable] struct {
	Parent T
	Shape  Shape
	BB     BB
}

// ShapeIndex is a linear-scan proximity index. Items are compared with == on
// Remove, so pointer items are matched by identity.
//
// The index holds references only; items and shapes must outlive their
// entries.
type ShapeIndex[T comparable] struct {
	shapeFunc ShapeFunc[T]
	entries   []ShapeEntry[T]

	logger *zap.Logger
}

// Option configures a ShapeIndex.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// New returns an index over items that expose their own shape.
func New[T interface {
	comparable
	Shaper
}](opts ...Option) *ShapeIndex[T] {
	return NewWithShapeFunc[T](DefaultShapeFunc[T], opts...)
}

// NewWithShapeFunc returns an index that derives each item's shape with fn.
func NewWithShapeFunc[T comparable](fn ShapeFunc[T], opts ...Option) *ShapeIndex[T] {
	if fn == nil {
		panic("shapeindex: nil ShapeFunc")
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &ShapeIndex[T]{
		shapeFunc: fn,
		entries:   make([]ShapeEntry[T], 0, o.capacity),
		logger:    o.logger,
	}
}

// Add appends an entry for item. Adding the same item twice yields two
// entries. It panics if the shape function returns nil.
func (index *ShapeIndex[T]) Add(item T) {
	shape := index.shapeFunc(item)
	if shape == nil {
		panic(fmt.Sprintf("shapeindex: nil shape for item %v", item))
	}
	index.entries = append(index.entries, ShapeEntry[T]{
		Parent: item,
		Shape:  shape,
		BB:     shape.BB(0),
	})
}

// Remove drops the first entry whose item equals item. Removing an item that
// is not indexed does nothing.
func (index *ShapeIndex[T]) Remove(item T) {
	i := slices.IndexFunc(index.entries, func(e ShapeEntry[T]) bool {
		return e.Parent == item
	})
	if i < 0 {
		index.logger.Debug("remove of unindexed item ignored", zap.Any("item", item))
		return
	}
	index.entries = slices.Delete(index.entries, i, i+1)
}

// Size is the number of entries.
func (index *ShapeIndex[T]) Size() int {
	return len(index.entries)
}

// Clear drops every entry. Iterators taken before the call keep scanning the
// entries they started with.
func (index *ShapeIndex[T]) Clear() {
	index.logger.Debug("clearing shape index", zap.Int("entries", len(index.entries)))
	index.entries = nil
}

// BB returns the box holding every cached entry box, and false when the
// index is empty.
func (index *ShapeIndex[T]) BB() (BB, bool) {
	if len(index.entries) == 0 {
		return BB{}, false
	}
	bb := index.entries[0].BB
	for _, e := range index.entries[1:] {
		bb = bb.Merge(e.BB)
	}
	return bb, true
}
