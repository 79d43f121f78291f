// Package builder: internal configuration and deterministic defaults.
//
// buildConfig is the single source of truth for all construction knobs.
// Defaults are deterministic and documented; no globals. newBuildConfig
// applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - rng            = nil  (stochastic entry points reject a nil RNG)
//   - ethnicities    = 8
//   - strictCapacity = false (reproduce the one-assignment overshoot)

package builder

import (
	"math/rand" // RNG for stochastic construction
)

// buildConfig aggregates all knobs used by the construction pipeline.
// It is passed by VALUE to implementations (immutable to callers).
type buildConfig struct {
	// RNG for stochastic choices; nil means "no randomness supplied".
	rng *rand.Rand

	// Size of the categorical ethnicity set individuals draw from.
	ethnicities int

	// strictCapacity stops offering a structure the moment it reaches
	// its stated cap. The default (false) preserves the historical
	// behavior of removing a structure from the pool only after it has
	// been observed over capacity, so each structure may take exactly
	// one assignment beyond its cap.
	strictCapacity bool
}

// newBuildConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		rng:            nil,
		ethnicities:    defaultEthnicities,
		strictCapacity: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
