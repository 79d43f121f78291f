// Package contact provides a thread-safe in-memory contact-network Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) models who may infect whom:
//
//   - Nodes are individuals with a dense integer id and two immutable
//     attributes: Location (structure id) and Ethnicity (category)
//   - Edges are undirected, weighted, and carry a mandatory relation
//     Label ("neighbor", "proximity", "food", ...)
//   - Simple per (pair, label): re-adding overwrites the weight,
//     never duplicates the edge
//   - No self-loops, ever
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][label] = *Edge (mirrored for both endpoint orders)
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why use contact.Graph?
//
//   - Deterministic iteration — Nodes(), Edges(), Neighbors(),
//     LabeledNeighborIDs() all return sorted results, so construction
//     pipelines are reproducible under a fixed random seed.
//   - Copy-on-write friendly — Clone() and CloneEmpty() take atomic
//     snapshots under read locks; wiring and perturbation passes mutate
//     clones only, so a base graph can derive many independent
//     intervention scenarios.
//   - Label layering — multiple wiring passes compose different relation
//     layers onto one graph, and queries can restrict to a label subset.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - AddNode/AddEdge/HasEdge/RemoveEdge: O(1) amortized
//   - Neighbors/Degree: O(d·logd) for incident-edge count d
//   - Clone/Stats: O(V + E)
//
// See builder for population assignment and edge wiring, intervene for
// distancing/quarantine derivation, and epistate for compartmental-state
// queries.
package contact
