// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

//go:build !invariants && !race
// +build !invariants,!race

package buildutil

// Invariants is enabled when built with the invariants or race build tags.
// It turns on structural verification after container growth and
// compaction.
const Invariants = false
