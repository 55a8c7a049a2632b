package shapeindex

import "iter"

// QueryIterator walks the entries matching a spatial query. It holds the
// scan position and the query itself, so assigning it takes an independent
// copy that resumes exactly where the original was.
//
// Two QueryIterators are equal when their scan positions are equal. The
// query is deliberately left out so that QueryEnd compares equal to any
// iterator that has run off the end.
type QueryIterator[T comparable] struct {
	entries []ShapeEntry[T]
	pos     int

	filter queryFilter
}

// QueryBegin returns an iterator positioned on the first entry that Query
// would visit with the same arguments. A nil shape or an invalid distance
// yields an iterator that is already at the end.
func (index *ShapeIndex[T]) QueryBegin(shape Shape, minDistance float64, exact bool) QueryIterator[T] {
	if validateQuery(shape, minDistance) != nil {
		return index.QueryEnd()
	}
	it := QueryIterator[T]{
		entries: index.entries,
		filter:  newQueryFilter(shape, minDistance, exact),
	}
	it.skip()
	return it
}

// QueryEnd returns the end sentinel for query iteration.
func (index *ShapeIndex[T]) QueryEnd() QueryIterator[T] {
	return QueryIterator[T]{entries: index.entries, pos: len(index.entries)}
}

// skip advances to the next matching entry, or the end.
func (it *QueryIterator[T]) skip() {
	for ; it.pos < len(it.entries); it.pos++ {
		e := &it.entries[it.pos]
		if it.filter.match(e.BB, e.Shape) {
			return
		}
	}
}

// Next moves past the current match to the following one.
func (it *QueryIterator[T]) Next() {
	if it.Done() {
		return
	}
	it.pos++
	it.skip()
}

// Item returns the matched item. It panics at the end.
func (it QueryIterator[T]) Item() T {
	return it.entries[it.pos].Parent
}

func (it QueryIterator[T]) Done() bool {
	return it.pos >= len(it.entries)
}

// Equal compares scan positions only.
func (it QueryIterator[T]) Equal(other QueryIterator[T]) bool {
	return it.pos == other.pos
}

// Matches ranges over the same items, in the same order, as Query would
// visit. Invalid arguments produce an empty sequence.
func (index *ShapeIndex[T]) Matches(shape Shape, minDistance float64, exact bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := index.QueryBegin(shape, minDistance, exact); !it.Done(); it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}
