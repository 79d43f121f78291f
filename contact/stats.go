package contact

// GraphStats is a read-only snapshot of catalog sizes, including a
// breakdown of edges by relation label.
type GraphStats struct {
	// NodeCount is the number of individuals in the graph.
	NodeCount int

	// EdgeCount is the number of distinct (pair, label) edges.
	EdgeCount int

	// EdgesByLabel maps each relation label to its edge count.
	EdgesByLabel map[string]int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
// The two lock phases are taken separately to reduce contention; each
// phase observes a consistent view.
// Complexity: O(V + E)
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{EdgesByLabel: make(map[string]int)}

	g.muNode.RLock()
	stats.NodeCount = len(g.nodes)
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	for u, byOther := range g.adjacency {
		for v, byLabel := range byOther {
			if u > v {
				continue
			}
			for label := range byLabel {
				stats.EdgesByLabel[label]++
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
