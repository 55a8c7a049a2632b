package shapeindex

import "iter"

// Iterator walks every entry in insertion order. It is a value: copies move
// independently. Mutating the index invalidates outstanding iterators.
type Iterator[T comparable] struct {
	entries []ShapeEntry[T]
	pos     int
}

// Begin returns an iterator at the first entry.
func (index *ShapeIndex[T]) Begin() Iterator[T] {
	return Iterator[T]{entries: index.entries}
}

// End returns the position one past the last entry.
func (index *ShapeIndex[T]) End() Iterator[T] {
	return Iterator[T]{entries: index.entries, pos: len(index.entries)}
}

// Item returns the item at the current position. It panics at the end.
func (it Iterator[T]) Item() T {
	return it.entries[it.pos].Parent
}

func (it *Iterator[T]) Next() {
	if it.Done() {
		return
	}
	it.pos++
}

func (it Iterator[T]) Done() bool {
	return it.pos >= len(it.entries)
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// All ranges over every item in insertion order.
func (index *ShapeIndex[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := index.Begin(); !it.Done(); it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}

// Entries ranges over the stored entries with their positions. The entries
// are copies; changing them does not affect the index.
func (index *ShapeIndex[T]) Entries() iter.Seq2[int, ShapeEntry[T]] {
	return func(yield func(int, ShapeEntry[T]) bool) {
		for i, e := range index.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
