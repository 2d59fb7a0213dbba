// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package randutil provides seeded random number generation for tests.
package randutil

import (
	"math/rand"
	"os"
	"strconv"
	"time"
)

// seedEnv overrides the test seed so a failing randomized test can be
// reproduced: SEBBU_RANDOM_SEED=<seed> go test ./...
const seedEnv = "SEBBU_RANDOM_SEED"

// NewTestRand returns a pseudo-random generator and the seed it was
// created with. Tests should log the seed on failure.
func NewTestRand() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	if s, ok := os.LookupEnv(seedEnv); ok {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = parsed
		}
	}
	return rand.New(rand.NewSource(seed)), seed
}
