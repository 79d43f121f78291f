// Package campnet builds synthetic contact networks for populations housed in
// discrete physical structures (shelters in a settlement, isoboxes in a camp),
// for use as the substrate of an epidemic-spread simulation.
//
// 🚀 What is campnet?
//
//	A thread-safe, in-memory library that brings together:
//		• Core primitives: individuals (nodes) with location & ethnicity,
//		  labeled weighted contact edges, copy-on-write graph transforms
//		• Spatial layout: rectangular structure grids with Chebyshev
//		  proximity neighborhoods
//		• Wiring passes: intra-structure cliques, attribute-gated
//		  cross-structure proximity links, shared-queue contacts
//		• Interventions: distancing & quarantine variants derived by
//		  structured stochastic edge thinning
//		• State queries: read-only filters over an external SEIR-style
//		  simulator's per-node compartmental states
//
// ✨ Why choose campnet?
//
//   - Explicit randomness – every stochastic entry point takes a seeded
//     *rand.Rand via WithSeed/WithRand, so runs are reproducible
//   - Copy-on-write – every transform returns an independent graph;
//     inputs are never mutated, so one base graph can fan out into many
//     intervention scenarios
//   - Rock-solid guarantees – R/W locks, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	contact/   — fundamental Graph, Node, Edge types & thread-safe primitives
//	campgrid/  — rectangular structure grid & proximity neighborhoods
//	builder/   — population assignment & the three edge-wiring passes
//	intervene/ — distancing/quarantine graph derivation via edge thinning
//	epistate/  — compartmental state mapping & node-state queries
//
// Quick ASCII example:
//
//	    struct 0───struct 1
//	       │           │
//	    struct 2───struct 3
//
//	a 2×2 camp grid; every individual inside a structure forms a clique,
//	and same-ethnicity individuals in adjacent structures are linked.
//
// Dive into the examples/ directory for an end-to-end camp scenario.
//
//	go get github.com/katalvlaran/campnet
package campnet
