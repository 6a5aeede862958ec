// SPDX-License-Identifier: MIT
// Package: fractal/ifs
//
// options.go — functional options shared by Random and Deterministic.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last wins.
//   • Numeric knobs (NumPoints, NumIter) are validated by the generators and
//     reported as ErrInvalidArgument, never by panicking here.
//   • WithSource(nil) panics: a nil source is a programmer error.
//   • Without WithSource/WithSeed, Random uses sampler.NewRand(0), a fixed
//     default stream. There is no time-based seeding anywhere.

package ifs

import (
	"math"

	"github.com/katalvlaran/fractal/sampler"
)

// Defaults.
const (
	// DefaultNumPoints is the chaos-game output length.
	DefaultNumPoints = 1000
	// DefaultNumIter is the number of deterministic subdivision rounds.
	DefaultNumIter = 5
	// DefaultRandomZ0 is the seed ordinate of the chaos game: first point (0, 0).
	DefaultRandomZ0 = 0.0
	// DefaultDeterministicZ0 is the seed ordinate of subdivision: first point (0, 1).
	DefaultDeterministicZ0 = 1.0
)

// MaxPoints caps the length of any generated sequence: 2³² points (64 GiB)
// on 64-bit platforms, less where int is 32 bits. Larger requests fail with
// ErrInvalidArgument before anything is allocated.
const MaxPoints = min(1<<32, math.MaxInt/64)

// Option customizes a generator call.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	numPoints int
	numIter   int
	z0        float64
	z0Set     bool
	src       sampler.Source
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		numPoints: DefaultNumPoints,
		numIter:   DefaultNumIter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// seedOrdinate returns the configured z0 or the generator-specific default.
func (c config) seedOrdinate(def float64) float64 {
	if c.z0Set {
		return c.z0
	}

	return def
}

// source returns the configured source or the deterministic default stream.
func (c config) source() sampler.Source {
	if c.src != nil {
		return c.src
	}

	return sampler.NewRand(0)
}

// WithNumPoints sets the chaos-game output length (must be ≥ 1).
func WithNumPoints(n int) Option {
	return func(c *config) { c.numPoints = n }
}

// WithNumIter sets the number of subdivision rounds (must be ≥ 0).
func WithNumIter(n int) Option {
	return func(c *config) { c.numIter = n }
}

// WithZ0 sets the seed ordinate: the first output point is (0, z0).
func WithZ0(z0 float64) Option {
	return func(c *config) {
		c.z0 = z0
		c.z0Set = true
	}
}

// WithSource injects the random source used by Random.
// Panics on nil.
func WithSource(src sampler.Source) Option {
	if src == nil {
		panic("ifs: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed is shorthand for WithSource(sampler.NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = sampler.NewRand(seed) }
}
