// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package ticket provides a coat-check map: every added element is
// assigned a monotonically increasing integer ticket, and elements are
// looked up and removed by ticket in O(log n) via binary search over a
// ticket-sorted backing slice.
//
// Removal tombstones the slot in place so the sort invariant survives for
// free; tombstones are physically reclaimed once they outnumber live
// elements. Map is not safe for concurrent use.
package ticket

import (
	"github.com/cockroachdb/errors"

	"github.com/MarSe32m/sebbu-collections/pkg/util/buildutil"
)

// Ticket identifies an element added to a Map. Tickets are assigned in
// strictly increasing order and are never reused, even after removal.
type Ticket uint64

// compactionDenominator controls when tombstoned slots are reclaimed: a
// removal triggers compaction once live elements make up less than
// 1/compactionDenominator of the backing slice. This bounds the tombstone
// fraction and keeps iteration proportional to the live count rather than
// the historical insertion count.
const compactionDenominator = 2

// record is one slot of the backing slice. A record with live == false is
// a tombstone: its ticket stays in place to preserve the sort order, but
// its element has been zeroed and released.
type record[T any] struct {
	id   Ticket
	elem T
	live bool
}

// Map assigns stable integer tickets to added elements. The zero value is
// ready to use.
type Map[T any] struct {
	records []record[T]
	nextID  Ticket
	live    int // number of non-tombstoned records
}

// NewMap returns an empty Map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{}
}

// Len returns the number of live elements in the Map.
func (m *Map[T]) Len() int {
	return m.live
}

// Empty returns true when the Map holds no live elements.
func (m *Map[T]) Empty() bool {
	return m.live == 0
}

// Add stores element and returns its assigned ticket. Tickets increase by
// one per call, so appending to the tail keeps the backing slice sorted.
func (m *Map[T]) Add(element T) Ticket {
	id := m.nextID
	m.records = append(m.records, record[T]{id: id, elem: element, live: true})
	m.live++
	m.nextID++
	return id
}

// AddAll stores the elements in order and returns their tickets, parallel
// to the input.
func (m *Map[T]) AddAll(elements []T) []Ticket {
	tickets := make([]Ticket, len(elements))
	for i, e := range elements {
		tickets[i] = m.Add(e)
	}
	return tickets
}

// findIndex locates id in the sorted backing slice. Half-open bounds keep
// the search correct on an empty slice, and the unsigned midpoint cannot
// overflow.
func (m *Map[T]) findIndex(id Ticket) (int, bool) {
	lo, hi := 0, len(m.records)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.records[mid].id < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(m.records) && m.records[lo].id == id
}

// Get returns the element stored under id. The second return value is
// false when no live element is stored under id; a ticket that was never
// issued and a ticket whose element was removed are indistinguishable.
func (m *Map[T]) Get(id Ticket) (T, bool) {
	if i, ok := m.findIndex(id); ok && m.records[i].live {
		return m.records[i].elem, true
	}
	var zero T
	return zero, false
}

// Remove deletes and returns the element stored under id. The second
// return value is false, and the Map unchanged, when no live element is
// stored under id. A second Remove of the same ticket is a no-op.
func (m *Map[T]) Remove(id Ticket) (T, bool) {
	var zero T
	i, ok := m.findIndex(id)
	if !ok || !m.records[i].live {
		return zero, false
	}
	element := m.records[i].elem
	m.records[i].elem = zero
	m.records[i].live = false
	m.live--
	if m.live*compactionDenominator < len(m.records) {
		m.compact()
	}
	return element, true
}

// compact rebuilds the backing slice keeping only live records. Relative
// order is preserved, so the sort invariant holds on the result.
func (m *Map[T]) compact() {
	compacted := make([]record[T], 0, m.live)
	for i := range m.records {
		if m.records[i].live {
			compacted = append(compacted, m.records[i])
		}
	}
	m.records = compacted
	if buildutil.Invariants {
		m.verify()
	}
}

// ForEach calls fn for every live element in ascending-ticket (equals
// insertion) order.
func (m *Map[T]) ForEach(fn func(id Ticket, element T)) {
	for i := range m.records {
		if m.records[i].live {
			fn(m.records[i].id, m.records[i].elem)
		}
	}
}

// Iter returns a cursor over the live elements in ascending-ticket order.
// Tombstones are skipped. The cursor captures the backing slice at
// creation time; mutating the Map while a cursor is outstanding is not
// supported, and restarting requires a fresh cursor.
func (m *Map[T]) Iter() Iterator[T] {
	return Iterator[T]{records: m.records}
}

// Clone returns a deep copy of the Map. Mutating either map never affects
// the other.
func (m *Map[T]) Clone() *Map[T] {
	c := &Map[T]{
		records: make([]record[T], len(m.records)),
		nextID:  m.nextID,
		live:    m.live,
	}
	copy(c.records, m.records)
	return c
}

// verify checks the post-compaction shape of the Map. Only run under the
// invariants or race build tags.
func (m *Map[T]) verify() {
	if len(m.records) != m.live {
		panic(errors.AssertionFailedf(
			"compaction left %d records for %d live elements", len(m.records), m.live))
	}
	for i := 1; i < len(m.records); i++ {
		if m.records[i-1].id >= m.records[i].id {
			panic(errors.AssertionFailedf(
				"compaction broke ticket order at %d: %d >= %d",
				i, m.records[i-1].id, m.records[i].id))
		}
	}
}

// Iterator is a cursor over a Map's live elements.
type Iterator[T any] struct {
	records []record[T]
	pos     int
}

// Next returns the next live element's ticket and value. The third return
// value is false once the live elements are exhausted.
func (it *Iterator[T]) Next() (Ticket, T, bool) {
	for it.pos < len(it.records) {
		rec := &it.records[it.pos]
		it.pos++
		if rec.live {
			return rec.id, rec.elem, true
		}
	}
	var zero T
	return 0, zero, false
}
