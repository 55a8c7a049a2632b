package shapeindex

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Visitor receives each match of a Query. Returning false stops the scan.
type Visitor[T any] func(item T) bool

// queryFilter is the match predicate shared by Query and QueryIterator.
type queryFilter struct {
	shape       Shape
	refBB       BB
	minDistance float64
	minDistSq   float64
	exact       bool
}

func newQueryFilter(shape Shape, minDistance float64, exact bool) queryFilter {
	return queryFilter{
		shape:       shape,
		refBB:       shape.BB(0),
		minDistance: minDistance,
		minDistSq:   minDistance * minDistance,
		exact:       exact,
	}
}

// match rejects on the cached box first and only runs the exact test on
// survivors.
func (f *queryFilter) match(bb BB, shape Shape) bool {
	if f.refBB.SquaredDistance(bb) > f.minDistSq {
		return false
	}
	return !f.exact || shape.Collide(f.shape, f.minDistance)
}

func validateQuery(shape Shape, minDistance float64) error {
	if shape == nil {
		return ErrNilShape
	}
	if minDistance < 0 || math.IsNaN(minDistance) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, minDistance)
	}
	return nil
}

// Query calls visitor for every item whose shape lies within minDistance of
// shape and returns how many matches were visited.
//
// Candidates are first filtered on their cached bounding box. With exact set,
// survivors must also pass Shape.Collide with minDistance as the clearance;
// without it the box test alone decides. A zero minDistance matches touching
// or overlapping shapes.
//
// If visitor returns false the scan stops at once and the count includes the
// match that stopped it.
func (index *ShapeIndex[T]) Query(shape Shape, minDistance float64, visitor Visitor[T], exact bool) (int, error) {
	if err := validateQuery(shape, minDistance); err != nil {
		index.logger.Debug("query rejected", zap.Error(err))
		return 0, err
	}
	if visitor == nil {
		return 0, ErrNilVisitor
	}

	filter := newQueryFilter(shape, minDistance, exact)
	n := 0
	for i := range index.entries {
		e := &index.entries[i]
		if !filter.match(e.BB, e.Shape) {
			continue
		}
		n++
		if !visitor(e.Parent) {
			return n, nil
		}
	}
	return n, nil
}

// QueryAll returns every match of Query in index order.
func (index *ShapeIndex[T]) QueryAll(shape Shape, minDistance float64, exact bool) ([]T, error) {
	var items []T
	_, err := index.Query(shape, minDistance, func(item T) bool {
		items = append(items, item)
		return true
	}, exact)
	return items, err
}

// QueryFirst returns the first match in index order, for hit-testing.
func (index *ShapeIndex[T]) QueryFirst(shape Shape, minDistance float64, exact bool) (T, bool, error) {
	var first T
	n, err := index.Query(shape, minDistance, func(item T) bool {
		first = item
		return false
	}, exact)
	return first, n > 0, err
}
