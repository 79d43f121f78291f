// Package builder: functional options for the construction pipeline.
//
// Contract (strict):
//   - Options are functional (type Option func(*buildConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     construction functions themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through buildConfig.

package builder

import (
	"math/rand" // RNG source for stochastic construction
)

// Option customizes construction behavior by mutating a buildConfig
// instance before assignment or wiring begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// WithRand provides an explicit RNG for stochastic construction.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		// Seeded source → reproducible assignments/shuffles/draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEthnicities sets the size of the categorical ethnicity set
// individuals are drawn from (default 8). Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithEthnicities(n int) Option {
	if n < 1 {
		panic("builder: WithEthnicities(n<1)")
	}
	return func(c *buildConfig) {
		c.ethnicities = n
	}
}

// WithStrictCapacity makes AssignPopulation stop offering a structure
// the moment it reaches its stated cap, instead of the default tolerance
// that lets each structure take one assignment beyond its cap before
// being excluded. Downstream occupancy statistics depend on which policy
// is active, so the historical overshoot remains the default.
// Complexity: O(1) time, O(1) space.
func WithStrictCapacity() Option {
	return func(c *buildConfig) {
		c.strictCapacity = true
	}
}
