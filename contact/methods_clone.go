// Package contact: copy-on-write support.
//
// Every wiring or perturbation pass in campnet operates on a clone and
// leaves its input untouched, so one base graph can fan out into many
// independent intervention scenarios. Clone holds both read locks for
// the whole pass: the snapshot is atomic with respect to the source.

package contact

// CloneEmpty returns a new Graph with the same nodes but no edges.
// Node values are copied; the clone shares no mutable state with g.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		nn := *n
		clone.nodes[id] = &nn
		clone.adjacency[id] = make(map[int]map[string]*Edge)
	}

	return clone
}

// Clone returns a deep copy of the Graph: nodes, edges, and adjacency.
// The copy is taken under both read locks, so no interleaved mutation of
// the source can tear it.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		nn := *n
		clone.nodes[id] = &nn
		clone.adjacency[id] = make(map[int]map[string]*Edge)
	}
	for u, byOther := range g.adjacency {
		for v, byLabel := range byOther {
			if u > v {
				continue // each edge is duplicated once, then mirrored
			}
			for label, e := range byLabel {
				ne := *e
				clone.ensureAdjPair(u, v)
				clone.ensureAdjPair(v, u)
				clone.adjacency[u][v][label] = &ne
				clone.adjacency[v][u][label] = &ne
				clone.edgeCount++
			}
		}
	}

	return clone
}
