// Package intervene: tunable options and error definitions for
// intervention-graph derivation.
package intervene

import (
	"errors"
	"math/rand"
)

// Sentinel errors for perturbation calls.
var (
	// ErrGraphNil is returned if a nil base graph is passed.
	ErrGraphNil = errors.New("intervene: base graph is nil")

	// ErrNeedRandSource is returned when no RNG was supplied
	// (use WithSeed or WithRand).
	ErrNeedRandSource = errors.New("intervene: rng is required")

	// ErrBadScale is returned for a negative exponential scale.
	ErrBadScale = errors.New("intervene: scale must be non-negative")

	// ErrBadFloor is returned for a negative retention floor.
	ErrBadFloor = errors.New("intervene: retention floor must be non-negative")
)

// Option configures perturbation behavior via functional arguments.
type Option func(*thinConfig)

// thinConfig carries the RNG for stochastic thinning; passed by value.
type thinConfig struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG for edge thinning.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("intervene: WithRand(nil)")
	}
	return func(c *thinConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *thinConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newThinConfig applies options in order over deterministic defaults.
func newThinConfig(opts ...Option) thinConfig {
	var cfg thinConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
