// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package ring

// Iterator is a cursor over the elements of a Buffer or Deque in logical
// order. It captures the backing store and bounds at creation time, so a
// finished iterator can be restarted with Reset, but mutating the source
// while the iterator is outstanding is not supported.
type Iterator[T any] struct {
	buf   []T
	head  int
	count int
	pos   int
}

// Next returns the next element and advances the cursor. The second return
// value is false once the elements are exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= it.count {
		var zero T
		return zero, false
	}
	element := it.buf[(it.head+it.pos)%len(it.buf)]
	it.pos++
	return element, true
}

// Reset rewinds the cursor to the first element captured at creation.
func (it *Iterator[T]) Reset() {
	it.pos = 0
}
