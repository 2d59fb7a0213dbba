// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package bitset provides a fixed-size array of bit flags packed into
// 64-bit words.
package bitset

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

const wordBits = 64

// BitSet is a fixed-size set of bit flags. The size is set at construction
// and indices are validated against it. BitSet is not safe for concurrent
// use.
type BitSet struct {
	words []uint64
	size  int
}

// New returns a BitSet of the given size with all bits clear.
func New(size int) *BitSet {
	if size < 0 {
		panic(errors.AssertionFailedf("bitset size must be non-negative; got %d", size))
	}
	return &BitSet{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

// Size returns the number of bits in the BitSet.
func (b *BitSet) Size() int {
	return b.size
}

func (b *BitSet) checkIndex(i int) {
	if i < 0 || i >= b.size {
		panic(errors.AssertionFailedf("bit index %d out of bounds [0, %d)", i, b.size))
	}
}

// Set sets bit i.
func (b *BitSet) Set(i int) {
	b.checkIndex(i)
	b.words[i/wordBits] |= 1 << (i % wordBits)
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) {
	b.checkIndex(i)
	b.words[i/wordBits] &^= 1 << (i % wordBits)
}

// IsSet returns true when bit i is set.
func (b *BitSet) IsSet(i int) bool {
	b.checkIndex(i)
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Next returns the first set bit at or after i, if any.
func (b *BitSet) Next(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= b.size {
		return -1, false
	}
	// Mask off the bits below i in its word, then scan word by word.
	w := b.words[i/wordBits] &^ ((1 << (i % wordBits)) - 1)
	for base := (i / wordBits) * wordBits; base < b.size; {
		if w != 0 {
			return base + bits.TrailingZeros64(w), true
		}
		base += wordBits
		if base < b.size {
			w = b.words[base/wordBits]
		}
	}
	return -1, false
}

// ForEach calls fn for every set bit in ascending order.
func (b *BitSet) ForEach(fn func(i int)) {
	for i, w := range b.words {
		for w != 0 {
			fn(i*wordBits + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}

// Reset clears all bits.
func (b *BitSet) Reset() {
	clear(b.words)
}

// Clone returns a deep copy of the BitSet.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{words: make([]uint64, len(b.words)), size: b.size}
	copy(c.words, b.words)
	return c
}
