// Copyright 2026 The sebbu-collections Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package parallel fans a transform out across worker goroutines while
// preserving input order in the results.
package parallel

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

type config struct {
	parallelism int
	blockSize   int
}

// Option configures Map.
type Option func(*config) error

// WithParallelism bounds the number of concurrently running workers. The
// default is GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errors.Newf("parallelism must be a positive number: %d", n)
		}
		cfg.parallelism = n
		return nil
	}
}

// WithBlockSize sets the number of consecutive input elements handed to a
// worker at a time. The default partitions the input evenly across the
// workers.
func WithBlockSize(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errors.Newf("block size must be a positive number: %d", n)
		}
		cfg.blockSize = n
		return nil
	}
}

// Map applies fn to every element of in and returns the results in input
// order, exactly as a sequential map would. Blocks of consecutive elements
// are processed by concurrent workers; the first error from fn (or the
// context) cancels the remaining work and is returned.
func Map[T, U any](
	ctx context.Context, in []T, fn func(context.Context, T) (U, error), opts ...Option,
) ([]U, error) {
	cfg := config{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.blockSize == 0 {
		cfg.blockSize = (len(in) + cfg.parallelism - 1) / cfg.parallelism
		if cfg.blockSize == 0 {
			cfg.blockSize = 1
		}
	}

	out := make([]U, len(in))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for start := 0; start < len(in); start += cfg.blockSize {
		start := start
		end := start + cfg.blockSize
		if end > len(in) {
			end = len(in)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn(ctx, in[i])
				if err != nil {
					return err
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
