// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and resolved configuration.
//
// Deterministic defaults:
//   - idFn     = ExcelColumnIDFn   (A, B, C, ...)
//   - rng      = seeded with defaultSeed
//   - min, max = 10, 99            (RandomArray value range, inclusive)

package builder

import "math/rand"

const (
	// defaultSeed replaces seed 0 so "no seed" is still reproducible.
	defaultSeed int64 = 1

	// DefaultMinValue and DefaultMaxValue bound RandomArray values.
	DefaultMinValue = 10
	DefaultMaxValue = 99
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	min, max int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// newBuilderConfig applies opts over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: ExcelColumnIDFn,
		min:  DefaultMinValue,
		max:  DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSeed seeds the RNG; seed 0 selects the fixed default seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithRange sets the inclusive value range of RandomArray.
// Panics if lo > hi.
func WithRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithRange(lo>hi)")
	}
	return func(c *builderConfig) {
		c.min, c.max = lo, hi
	}
}
