// SPDX-License-Identifier: MIT

// Package matrixes: per-call execution options.

package matrixes

import "github.com/katalvlaran/gridmat/parallel"

// config is the gathered option state one combinator call runs under.
type config struct {
	policy       parallel.Policy
	shareScratch bool
}

// Option adjusts a single combinator call.
type Option func(*config)

// WithPolicy replaces the whole execution policy.
func WithPolicy(p parallel.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithParallel forwards parallel options (mode, threshold, worker cap) to
// the runner driving the combinator.
func WithParallel(popts ...parallel.Option) Option {
	return func(c *config) {
		for _, opt := range popts {
			opt(&c.policy)
		}
	}
}

// WithSharedScratch lets ZipN reuse one per-cell buffer across the whole
// traversal instead of allocating a fresh slice per cell. Honored only when
// the call runs sequentially: under parallel execution a shared buffer would
// race, so ZipN silently falls back to per-cell allocation.
func WithSharedScratch() Option {
	return func(c *config) { c.shareScratch = true }
}

// gather applies opts on top of the default policy.
func gather(opts ...Option) config {
	c := config{policy: parallel.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
