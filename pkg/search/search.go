// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package search provides binary search over sorted random-access
// sequences.
package search

import "golang.org/x/exp/constraints"

// Find locates target in s, which must be sorted in ascending order. It
// returns the position of target and whether it is present; when absent,
// the position is where target would be inserted to keep s sorted.
func Find[T constraints.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && s[lo] == target
}

// FindFunc is Find over elements ordered by cmp, which must return a
// negative number when a sorts before b, zero when equal, and a positive
// number when a sorts after b. s must be sorted ascending under cmp.
func FindFunc[T any](s []T, target T, cmp func(a, b T) int) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && cmp(s[lo], target) == 0
}
