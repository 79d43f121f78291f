// Package contact: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) node and edge management for the
// Graph type defined in types.go. Separate RWMutex locks for nodes
// (muNode) and edges+adjacency (muEdgeAdj) minimize contention.
// Adjacency is a nested map adjacency[u][v][label] = *Edge, mirrored for
// both endpoint orders, giving constant-time existence, insertion, and
// deletion of labeled edges.

package contact

import "sort"

// AddNode inserts a new individual with the given id, structure location,
// and ethnicity category. Returns ErrNegativeNodeID if id < 0.
// If the node already exists this is a no-op (idempotent), preserving the
// set-once immutability of node attributes.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, location, ethnicity int) error {
	if id < 0 {
		return ErrNegativeNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // attributes are immutable after first insert
	}
	g.nodes[id] = &Node{ID: id, Location: location, Ethnicity: ethnicity}

	// Initialize the adjacency bucket for this node.
	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	if id < 0 {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given id.
// Returns ErrNodeNotFound if absent, ErrNegativeNodeID if id < 0.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	if id < 0 {
		return Node{}, ErrNegativeNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V·logV)
func (g *Graph) Nodes() []int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// AddEdge creates (or overwrites) the undirected labeled edge between u
// and v with the given weight. Both endpoints must already exist.
// Re-adding an existing (pair, label) overwrites the weight; the edge
// count is unchanged (last write wins, per the simple-per-label model).
//
// Returns ErrNegativeNodeID, ErrEmptyLabel, ErrSelfLoop, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, weight float64, label string) error {
	if u < 0 || v < 0 {
		return ErrNegativeNodeID
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if u == v {
		return ErrSelfLoop
	}
	g.muNode.RLock()
	_, okU := g.nodes[u]
	_, okV := g.nodes[v]
	g.muNode.RUnlock()
	if !okU || !okV {
		return ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Canonical endpoint order keeps one Edge value per pair.
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	if e, ok := g.adjacency[lo][hi][label]; ok {
		e.Weight = weight // overwrite attributes on re-add
		return nil
	}
	e := &Edge{From: lo, To: hi, Label: label, Weight: weight}
	g.ensureAdjPair(lo, hi)
	g.ensureAdjPair(hi, lo)
	g.adjacency[lo][hi][label] = e
	g.adjacency[hi][lo][label] = e
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge of any label connects u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacency[u][v]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// HasLabeledEdge reports whether an edge with the given label connects u and v.
// Complexity: O(1).
func (g *Graph) HasLabeledEdge(u, v int, label string) bool {
	if u < 0 || v < 0 || label == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v][label]

	return ok
}

// Edge returns a copy of the edge between u and v carrying label.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(u, v int, label string) (Edge, error) {
	if u < 0 || v < 0 {
		return Edge{}, ErrNegativeNodeID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[u][v][label]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// RemoveEdge deletes the edge between u and v carrying label, updating
// both adjacency directions.
// Returns ErrNegativeNodeID, or ErrEdgeNotFound if no such edge.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int, label string) error {
	if u < 0 || v < 0 {
		return ErrNegativeNodeID
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacency[u][v][label]; !ok {
		return ErrEdgeNotFound
	}
	g.dropAdj(u, v, label)
	g.dropAdj(v, u, label)
	g.edgeCount--

	return nil
}

// Neighbors returns copies of all edges incident to node id, sorted by
// (other endpoint, label) for reproducible ordering.
// Complexity: O(d·logd), where d is the number of incident edges.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if id < 0 {
		return nil, ErrNegativeNodeID
	}
	g.muNode.RLock()
	if _, ok := g.nodes[id]; !ok {
		g.muNode.RUnlock()
		return nil, ErrNodeNotFound
	}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	type incident struct {
		other int
		edge  *Edge
	}
	var inc []incident
	for other, byLabel := range g.adjacency[id] {
		for _, e := range byLabel {
			inc = append(inc, incident{other: other, edge: e})
		}
	}
	sort.Slice(inc, func(i, j int) bool {
		if inc[i].other != inc[j].other {
			return inc[i].other < inc[j].other
		}
		return inc[i].edge.Label < inc[j].edge.Label
	})
	out := make([]Edge, len(inc))
	for i, it := range inc {
		out[i] = *it.edge
	}

	return out, nil
}

// NeighborIDs returns the ids of all nodes adjacent to id via at least
// one edge, in ascending order.
// Complexity: O(d·logd)
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	return g.LabeledNeighborIDs(id)
}

// LabeledNeighborIDs returns the ids of all nodes adjacent to id via at
// least one edge whose label is in labels, in ascending order. With no
// labels given, every label matches.
// Complexity: O(d·logd)
func (g *Graph) LabeledNeighborIDs(id int, labels ...string) ([]int, error) {
	if id < 0 {
		return nil, ErrNegativeNodeID
	}
	g.muNode.RLock()
	if _, ok := g.nodes[id]; !ok {
		g.muNode.RUnlock()
		return nil, ErrNodeNotFound
	}
	g.muNode.RUnlock()

	want := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		want[l] = struct{}{}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var ids []int
	for other, byLabel := range g.adjacency[id] {
		if len(byLabel) == 0 {
			continue
		}
		if len(want) == 0 {
			ids = append(ids, other)
			continue
		}
		for label := range byLabel {
			if _, ok := want[label]; ok {
				ids = append(ids, other)
				break
			}
		}
	}
	sort.Ints(ids)

	return ids, nil
}

// Degree returns the number of edges incident to node id, counting one
// per (neighbor, label) pair.
// Complexity: O(d).
func (g *Graph) Degree(id int) (int, error) {
	if id < 0 {
		return 0, ErrNegativeNodeID
	}
	g.muNode.RLock()
	if _, ok := g.nodes[id]; !ok {
		g.muNode.RUnlock()
		return 0, ErrNodeNotFound
	}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for _, byLabel := range g.adjacency[id] {
		deg += len(byLabel)
	}

	return deg, nil
}

// EdgeCount returns the total number of distinct (pair, label) edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns copies of all edges sorted by (From, To, Label).
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, byOther := range g.adjacency {
		for v, byLabel := range byOther {
			if u > v {
				continue // canonical direction only
			}
			for _, e := range byLabel {
				out = append(out, *e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].Label < out[j].Label
	})

	return out
}

// Internal helper methods:
////////////////////

// ensureAdj makes adjacency[id] non-nil.
func (g *Graph) ensureAdj(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]map[string]*Edge)
	}
}

// ensureAdjPair ensures adjacency[u][v] is initialized.
func (g *Graph) ensureAdjPair(u, v int) {
	g.ensureAdj(u)
	if g.adjacency[u][v] == nil {
		g.adjacency[u][v] = make(map[string]*Edge)
	}
}

// dropAdj removes adjacency[u][v][label], pruning empty inner maps.
func (g *Graph) dropAdj(u, v int, label string) {
	if m := g.adjacency[u][v]; m != nil {
		delete(m, label)
		if len(m) == 0 {
			delete(g.adjacency[u], v)
		}
	}
}
