// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package ring

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/MarSe32m/sebbu-collections/pkg/util/buildutil"
)

// goldenRatio is the growth factor for a Deque's backing store. Growing by
// the golden ratio rather than doubling lets freed blocks be reused by
// later growth events.
const goldenRatio = 1.618

// minDequeSlots is the smallest backing store a Deque allocates. With one
// slot held back as the empty/full sentinel it fits a single element.
const minDequeSlots = 2

// Deque is a growable double-ended queue maintained over a ring buffer.
// Unlike Buffer, adds never fail: the backing store grows whenever an add
// would otherwise overflow. The zero value is ready to use.
type Deque[T any] struct {
	buf  []T
	head int // the index of the front of the deque
	tail int // the index of the first position after the end of the deque
}

// NewDeque returns an empty Deque with the minimum backing store
// allocated.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{buf: make([]T, minDequeSlots)}
}

// Len returns the number of elements in the Deque.
func (d *Deque[T]) Len() int {
	if len(d.buf) == 0 {
		return 0
	}
	return count(d.head, d.tail, len(d.buf))
}

// Cap returns the number of elements the Deque can hold before it grows
// again.
func (d *Deque[T]) Cap() int {
	if len(d.buf) == 0 {
		return 0
	}
	return len(d.buf) - 1
}

// Empty returns true when the Deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.head == d.tail
}

// grow reallocates the backing store to n slots, copying the live elements
// in logical order to the front of the new store. This is the one place
// indices are normalized back to zero.
func (d *Deque[T]) grow(n int) {
	l := d.Len()
	newBuf := make([]T, n)
	if d.head <= d.tail {
		copy(newBuf, d.buf[d.head:d.tail])
	} else {
		k := copy(newBuf, d.buf[d.head:])
		copy(newBuf[k:], d.buf[:d.tail])
	}
	d.buf = newBuf
	d.head = 0
	d.tail = l
	if buildutil.Invariants {
		d.verify(l)
	}
}

// maybeGrow grows the backing store by the golden ratio when no free slot
// remains.
func (d *Deque[T]) maybeGrow() {
	if len(d.buf) == 0 {
		d.grow(minDequeSlots)
		return
	}
	if next(d.tail, len(d.buf)) != d.head {
		return
	}
	n := int(math.Ceil(goldenRatio * float64(len(d.buf))))
	if n < minDequeSlots {
		n = minDequeSlots
	}
	d.grow(n)
}

// AddLast appends element to the end of the Deque, growing the backing
// store if necessary.
func (d *Deque[T]) AddLast(element T) {
	d.maybeGrow()
	d.buf[d.tail] = element
	d.tail = next(d.tail, len(d.buf))
}

// AddFirst prepends element to the front of the Deque, growing the backing
// store if necessary.
func (d *Deque[T]) AddFirst(element T) {
	d.maybeGrow()
	d.head = prev(d.head, len(d.buf))
	d.buf[d.head] = element
}

// AddLastAll appends the elements in order and returns len(elements);
// adds to a Deque always succeed.
func (d *Deque[T]) AddLastAll(elements []T) int {
	for _, e := range elements {
		d.AddLast(e)
	}
	return len(elements)
}

// AddFirstAll prepends the elements one at a time and returns
// len(elements). Each element is prepended individually, so the last added
// element ends up at the front.
func (d *Deque[T]) AddFirstAll(elements []T) int {
	for _, e := range elements {
		d.AddFirst(e)
	}
	return len(elements)
}

// PopFirst removes and returns the element at the front of the Deque. The
// second return value is false when the Deque is empty.
func (d *Deque[T]) PopFirst() (T, bool) {
	var zero T
	if d.Empty() {
		return zero, false
	}
	element := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = next(d.head, len(d.buf))
	return element, true
}

// PopLast removes and returns the element at the end of the Deque. The
// second return value is false when the Deque is empty.
func (d *Deque[T]) PopLast() (T, bool) {
	var zero T
	if d.Empty() {
		return zero, false
	}
	d.tail = prev(d.tail, len(d.buf))
	element := d.buf[d.tail]
	d.buf[d.tail] = zero
	return element, true
}

// RemoveFirst removes and returns the element at the front of the Deque.
// It panics when the Deque is empty; callers that have not checked Empty
// should use PopFirst.
func (d *Deque[T]) RemoveFirst() T {
	element, ok := d.PopFirst()
	if !ok {
		panic(errors.AssertionFailedf("removing first from empty deque"))
	}
	return element
}

// RemoveLast removes and returns the element at the end of the Deque. It
// panics when the Deque is empty; callers that have not checked Empty
// should use PopLast.
func (d *Deque[T]) RemoveLast() T {
	element, ok := d.PopLast()
	if !ok {
		panic(errors.AssertionFailedf("removing last from empty deque"))
	}
	return element
}

// Get returns the element at position pos in the Deque (zero-based).
func (d *Deque[T]) Get(pos int) T {
	if pos < 0 || pos >= d.Len() {
		panic(errors.AssertionFailedf("index %d out of bounds [0, %d)", pos, d.Len()))
	}
	return d.buf[(d.head+pos)%len(d.buf)]
}

// GetFirst returns the element at the front of the Deque. It panics when
// the Deque is empty.
func (d *Deque[T]) GetFirst() T {
	if d.Empty() {
		panic(errors.AssertionFailedf("getting first from empty deque"))
	}
	return d.buf[d.head]
}

// GetLast returns the element at the end of the Deque. It panics when the
// Deque is empty.
func (d *Deque[T]) GetLast() T {
	if d.Empty() {
		panic(errors.AssertionFailedf("getting last from empty deque"))
	}
	return d.buf[prev(d.tail, len(d.buf))]
}

// Reserve grows the backing store so that at least n elements fit without
// further growth. It is an error to reserve fewer elements than the
// Deque's current length.
func (d *Deque[T]) Reserve(n int) {
	if n < d.Len() {
		panic(errors.AssertionFailedf("reserving %d elements, fewer than current length %d", n, d.Len()))
	}
	if n+1 > len(d.buf) {
		d.grow(n + 1)
	}
}

// Clone returns a deep copy of the Deque. Mutating either deque never
// affects the other.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{buf: make([]T, len(d.buf)), head: d.head, tail: d.tail}
	copy(c.buf, d.buf)
	return c
}

// Reset empties the Deque, keeping the backing store. The slots are zeroed
// so that removed elements are no longer referenced.
func (d *Deque[T]) Reset() {
	clear(d.buf)
	d.head = 0
	d.tail = 0
}

// Iter returns a cursor over the Deque's elements in logical order. The
// cursor captures the backing store at creation time; mutating the Deque
// while a cursor is outstanding is not supported.
func (d *Deque[T]) Iter() Iterator[T] {
	return Iterator[T]{buf: d.buf, head: d.head, count: d.Len()}
}

// verify checks the post-growth shape of the Deque. Only run under the
// invariants or race build tags.
func (d *Deque[T]) verify(wantLen int) {
	if d.head != 0 || d.tail != wantLen {
		panic(errors.AssertionFailedf(
			"deque growth left head=%d tail=%d, want head=0 tail=%d", d.head, d.tail, wantLen))
	}
	if d.tail >= len(d.buf) {
		panic(errors.AssertionFailedf(
			"deque growth left no free slot: tail=%d, %d slots", d.tail, len(d.buf)))
	}
}
