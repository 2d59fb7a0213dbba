// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package ring provides double-ended queues maintained over circular
// buffers: a fixed-capacity Buffer and a growable Deque.
//
// Both types address a contiguous backing slice through a head index and a
// tail index taken modulo the slice length, and both keep one backing slot
// permanently empty: head == tail means the buffer is empty, and a tail
// that would advance onto head means it is full. Without the spare slot
// those two states collapse into one.
//
// Neither type is safe for concurrent use. Instances have value semantics:
// Clone returns an independent buffer with no shared backing store.
package ring

import "github.com/cockroachdb/errors"

// Buffer is a fixed-capacity deque maintained over a ring buffer. Adds
// fail once the buffer is full; there is no implicit growth.
//
// Note: it is backed by a slice (unlike container/ring which is backed by
// a linked list).
type Buffer[T any] struct {
	buf  []T
	head int // the index of the front of the buffer
	tail int // the index of the first position after the end of the buffer
}

// NewBuffer returns a Buffer holding up to size elements. size must be
// greater than 2.
func NewBuffer[T any](size int) *Buffer[T] {
	if size <= 2 {
		panic(errors.AssertionFailedf("ring buffer size must be greater than 2; got %d", size))
	}
	// One extra slot so a full buffer is distinguishable from an empty one.
	return &Buffer[T]{buf: make([]T, size+1)}
}

// Len returns the number of elements in the Buffer.
func (r *Buffer[T]) Len() int {
	return count(r.head, r.tail, len(r.buf))
}

// Cap returns the number of elements the Buffer can hold.
func (r *Buffer[T]) Cap() int {
	return len(r.buf) - 1
}

// Empty returns true when the Buffer holds no elements.
func (r *Buffer[T]) Empty() bool {
	return r.head == r.tail
}

// Full returns true when no further element fits.
func (r *Buffer[T]) Full() bool {
	return next(r.tail, len(r.buf)) == r.head
}

// AddLast appends element to the end of the Buffer. It reports whether the
// element was added; a full Buffer is left unchanged.
func (r *Buffer[T]) AddLast(element T) bool {
	if r.Full() {
		return false
	}
	r.buf[r.tail] = element
	r.tail = next(r.tail, len(r.buf))
	return true
}

// AddFirst prepends element to the front of the Buffer. It reports whether
// the element was added; a full Buffer is left unchanged.
func (r *Buffer[T]) AddFirst(element T) bool {
	if r.Full() {
		return false
	}
	r.head = prev(r.head, len(r.buf))
	r.buf[r.head] = element
	return true
}

// AddLastAll appends the elements in order, stopping at the first element
// that does not fit. It returns the number of elements added.
func (r *Buffer[T]) AddLastAll(elements []T) int {
	for i, e := range elements {
		if !r.AddLast(e) {
			return i
		}
	}
	return len(elements)
}

// AddFirstAll prepends the elements one at a time, stopping at the first
// element that does not fit. It returns the number of elements added. Note
// that each element is prepended individually, so the last added element
// ends up at the front.
func (r *Buffer[T]) AddFirstAll(elements []T) int {
	for i, e := range elements {
		if !r.AddFirst(e) {
			return i
		}
	}
	return len(elements)
}

// PopFirst removes and returns the element at the front of the Buffer. The
// second return value is false when the Buffer is empty.
func (r *Buffer[T]) PopFirst() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	element := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = next(r.head, len(r.buf))
	return element, true
}

// PopLast removes and returns the element at the end of the Buffer. The
// second return value is false when the Buffer is empty.
func (r *Buffer[T]) PopLast() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	r.tail = prev(r.tail, len(r.buf))
	element := r.buf[r.tail]
	r.buf[r.tail] = zero
	return element, true
}

// RemoveFirst removes and returns the element at the front of the Buffer.
// It panics when the Buffer is empty; callers that have not checked Empty
// should use PopFirst.
func (r *Buffer[T]) RemoveFirst() T {
	element, ok := r.PopFirst()
	if !ok {
		panic(errors.AssertionFailedf("removing first from empty ring buffer"))
	}
	return element
}

// RemoveLast removes and returns the element at the end of the Buffer. It
// panics when the Buffer is empty; callers that have not checked Empty
// should use PopLast.
func (r *Buffer[T]) RemoveLast() T {
	element, ok := r.PopLast()
	if !ok {
		panic(errors.AssertionFailedf("removing last from empty ring buffer"))
	}
	return element
}

// Get returns the element at position pos in the Buffer (zero-based).
func (r *Buffer[T]) Get(pos int) T {
	if pos < 0 || pos >= r.Len() {
		panic(errors.AssertionFailedf("index %d out of bounds [0, %d)", pos, r.Len()))
	}
	return r.buf[(r.head+pos)%len(r.buf)]
}

// GetFirst returns the element at the front of the Buffer. It panics when
// the Buffer is empty.
func (r *Buffer[T]) GetFirst() T {
	if r.Empty() {
		panic(errors.AssertionFailedf("getting first from empty ring buffer"))
	}
	return r.buf[r.head]
}

// GetLast returns the element at the end of the Buffer. It panics when the
// Buffer is empty.
func (r *Buffer[T]) GetLast() T {
	if r.Empty() {
		panic(errors.AssertionFailedf("getting last from empty ring buffer"))
	}
	return r.buf[prev(r.tail, len(r.buf))]
}

// Resized returns an independent Buffer of capacity newSize holding the
// first min(newSize, Len()) elements of r in logical order. Shrinking
// below the current length silently drops the newest elements; this is
// deliberate lossy narrowing, not an error. newSize must be greater
// than 2.
func (r *Buffer[T]) Resized(newSize int) *Buffer[T] {
	resized := NewBuffer[T](newSize)
	n := r.Len()
	if n > newSize {
		n = newSize
	}
	for i := 0; i < n; i++ {
		resized.buf[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	resized.tail = n
	return resized
}

// Clone returns a deep copy of the Buffer. Mutating either buffer never
// affects the other.
func (r *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{buf: make([]T, len(r.buf)), head: r.head, tail: r.tail}
	copy(c.buf, r.buf)
	return c
}

// Reset empties the Buffer. The slots are zeroed so that removed elements
// are no longer referenced.
func (r *Buffer[T]) Reset() {
	clear(r.buf)
	r.head = 0
	r.tail = 0
}

// Iter returns a cursor over the Buffer's elements in logical order. The
// cursor captures the backing store at creation time; mutating the Buffer
// while a cursor is outstanding is not supported.
func (r *Buffer[T]) Iter() Iterator[T] {
	return Iterator[T]{buf: r.buf, head: r.head, count: r.Len()}
}

// next returns the index after i in a backing slice of length n.
func next(i, n int) int {
	return (i + 1) % n
}

// prev returns the index before i in a backing slice of length n.
func prev(i, n int) int {
	return (i - 1 + n) % n
}

// count derives the element count from the head and tail indices of a
// backing slice of length n. It is never stored.
func count(head, tail, n int) int {
	if tail >= head {
		return tail - head
	}
	return n - head + tail
}
