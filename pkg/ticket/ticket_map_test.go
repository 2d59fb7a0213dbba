// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package ticket

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarSe32m/sebbu-collections/pkg/util/randutil"
)

func checkMapInvariants[T any](t *testing.T, m *Map[T]) {
	t.Helper()
	live := 0
	for i := range m.records {
		if i > 0 {
			require.Less(t, m.records[i-1].id, m.records[i].id, "records must stay sorted by ticket")
		}
		require.Less(t, m.records[i].id, m.nextID)
		if m.records[i].live {
			live++
		}
	}
	require.Equal(t, live, m.live)
	require.Equal(t, live, m.Len())
	// Compaction keeps tombstones bounded to at most half the backing.
	require.GreaterOrEqual(t, m.live*compactionDenominator, len(m.records))
}

// TestMapStrings adds a thousand string elements and removes one by
// ticket, checking the lookup, removal, and iteration contracts around it.
func TestMapStrings(t *testing.T) {
	m := NewMap[string]()
	elements := make([]string, 1000)
	for i := range elements {
		elements[i] = strconv.Itoa(i)
	}
	tickets := m.AddAll(elements)

	require.Len(t, tickets, 1000)
	require.Equal(t, 1000, m.Len())
	for i, id := range tickets {
		require.Equal(t, Ticket(i), id)
		got, ok := m.Get(id)
		require.True(t, ok)
		require.Equal(t, elements[i], got)
	}

	removed, ok := m.Remove(10)
	require.True(t, ok)
	require.Equal(t, "10", removed)
	require.Equal(t, 999, m.Len())

	_, ok = m.Get(10)
	require.False(t, ok)
	m.ForEach(func(id Ticket, element string) {
		require.NotEqual(t, "10", element)
		require.NotEqual(t, Ticket(10), id)
	})

	// A second removal of the same ticket is a no-op.
	_, ok = m.Remove(10)
	require.False(t, ok)
	require.Equal(t, 999, m.Len())
	checkMapInvariants(t, m)
}

func TestMapUnknownTicket(t *testing.T) {
	var m Map[int]
	_, ok := m.Get(0)
	require.False(t, ok)
	_, ok = m.Remove(0)
	require.False(t, ok)

	m.Add(7)
	// Never-issued tickets look exactly like removed ones.
	_, ok = m.Get(12345)
	require.False(t, ok)
	_, ok = m.Remove(12345)
	require.False(t, ok)
	require.Equal(t, 1, m.Len())
}

func TestMapCompactionTrigger(t *testing.T) {
	var m Map[int]
	ids := m.AddAll([]int{10, 11, 12, 13})
	require.Equal(t, 4, len(m.records))

	// Two of four live: exactly half, no compaction yet.
	m.Remove(ids[0])
	m.Remove(ids[2])
	require.Equal(t, 4, len(m.records))
	require.Equal(t, 2, m.Len())

	// One of four live: below half, tombstones are reclaimed.
	m.Remove(ids[1])
	require.Equal(t, 1, len(m.records))
	require.Equal(t, 1, m.Len())

	got, ok := m.Get(ids[3])
	require.True(t, ok)
	require.Equal(t, 13, got)
}

func TestMapCompactionPreservesOrder(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("seed: %d", seed)

	var m Map[int]
	ids := make([]Ticket, 0, 500)
	for i := 0; i < 500; i++ {
		ids = append(ids, m.Add(i*3))
	}

	collect := func() ([]Ticket, []int) {
		var ks []Ticket
		var vs []int
		m.ForEach(func(id Ticket, element int) {
			ks = append(ks, id)
			vs = append(vs, element)
		})
		return ks, vs
	}

	alive := make(map[Ticket]bool, len(ids))
	for _, id := range ids {
		alive[id] = true
	}
	for _, i := range rng.Perm(len(ids))[:400] {
		beforeKs, beforeVs := collect()
		m.Remove(ids[i])
		alive[ids[i]] = false
		afterKs, afterVs := collect()

		// Removal only ever deletes the one element; the surviving
		// sequence and its order are untouched, compaction or not.
		require.Len(t, afterKs, len(beforeKs)-1)
		j := 0
		for k, id := range beforeKs {
			if id == ids[i] {
				continue
			}
			require.Equal(t, id, afterKs[j])
			require.Equal(t, beforeVs[k], afterVs[j])
			j++
		}
		checkMapInvariants(t, &m)
	}

	_, vs := collect()
	require.Len(t, vs, 100)
	for _, id := range ids {
		_, ok := m.Get(id)
		require.Equal(t, alive[id], ok)
	}
}

func TestMapIterator(t *testing.T) {
	var m Map[string]
	a := m.Add("a")
	b := m.Add("b")
	c := m.Add("c")
	d := m.Add("d")
	m.Remove(b)

	it := m.Iter()
	wantIDs := []Ticket{a, c, d}
	wantVals := []string{"a", "c", "d"}
	for i := range wantIDs {
		id, v, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, wantIDs[i], id)
		require.Equal(t, wantVals[i], v)
	}
	_, _, ok := it.Next()
	require.False(t, ok)
	// Exhausted cursors stay exhausted; restart with a fresh one.
	_, _, ok = it.Next()
	require.False(t, ok)

	it2 := m.Iter()
	id, v, ok := it2.Next()
	require.True(t, ok)
	require.Equal(t, a, id)
	require.Equal(t, "a", v)
}

func TestMapClone(t *testing.T) {
	var m Map[int]
	ids := m.AddAll([]int{1, 2, 3})

	c := m.Clone()
	c.Remove(ids[1])
	c.Add(4)

	require.Equal(t, 3, m.Len())
	got, ok := m.Get(ids[1])
	require.True(t, ok)
	require.Equal(t, 2, got)
	// Clones keep issuing tickets from the same point independently.
	require.Equal(t, Ticket(3), m.Add(5))
}

func TestMapTombstonedElementReleased(t *testing.T) {
	var m Map[*int]
	v := 7
	id := m.Add(&v)
	m.Add(nil) // keep one live so removal does not compact everything away
	_, ok := m.Remove(id)
	require.True(t, ok)
	for i := range m.records {
		require.Nil(t, m.records[i].elem)
	}
}

func TestMapRandomOps(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("seed: %d", seed)

	var m Map[int]
	model := make(map[Ticket]int)
	var issued []Ticket
	for i := 0; i < 10000; i++ {
		switch op := rng.Intn(4); op {
		case 0, 1:
			v := rng.Int()
			id := m.Add(v)
			model[id] = v
			issued = append(issued, id)
		case 2:
			if len(issued) == 0 {
				continue
			}
			id := issued[rng.Intn(len(issued))]
			want, inModel := model[id]
			got, ok := m.Remove(id)
			assert.Equal(t, inModel, ok)
			if ok {
				assert.Equal(t, want, got)
				delete(model, id)
			}
		case 3:
			if len(issued) == 0 {
				continue
			}
			id := issued[rng.Intn(len(issued))]
			want, inModel := model[id]
			got, ok := m.Get(id)
			assert.Equal(t, inModel, ok)
			if ok {
				assert.Equal(t, want, got)
			}
		}
		require.Equal(t, len(model), m.Len())
		checkMapInvariants(t, &m)
	}
}

func TestMapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("tickets are unique and strictly increasing", prop.ForAll(
		func(elements []string) bool {
			var m Map[string]
			tickets := m.AddAll(elements)
			for i, id := range tickets {
				if i > 0 && id <= tickets[i-1] {
					return false
				}
				if got, ok := m.Get(id); !ok || got != elements[i] {
					return false
				}
			}
			return m.Len() == len(elements)
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("removal round-trips the added element", prop.ForAll(
		func(elements []int64) bool {
			var m Map[int64]
			tickets := m.AddAll(elements)
			for i := len(elements) - 1; i >= 0; i-- {
				got, ok := m.Remove(tickets[i])
				if !ok || got != elements[i] {
					return false
				}
				if _, ok := m.Get(tickets[i]); ok {
					return false
				}
			}
			return m.Empty()
		},
		gen.SliceOf(gen.Int64()),
	))

	properties.TestingRun(t)
}

func BenchmarkMapAdd(b *testing.B) {
	var m Map[int]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Add(i)
	}
}

func BenchmarkMapGet(b *testing.B) {
	var m Map[int]
	tickets := make([]Ticket, 4096)
	for i := range tickets {
		tickets[i] = m.Add(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(tickets[i&4095])
	}
}

func BenchmarkMapAddRemove(b *testing.B) {
	var m Map[int]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := m.Add(i)
		m.Remove(id)
	}
}
