// Package epistate: read-only queries over simulator output and graph
// degree statistics.

package epistate

import (
	"sort"

	"github.com/katalvlaran/campnet/contact"
)

// StateModel is the read surface of the external epidemic simulator: a
// per-node lookup of the current (latest-timestep) compartmental state.
// The simulator itself is an external collaborator; this package never
// advances it, only reads it.
type StateModel interface {
	// CurrentState returns the node's compartmental state code at the
	// latest simulated timestep.
	CurrentState(node int) State
}

// NodesInState returns the ids of all graph nodes whose current state in
// the model equals s, in ascending order.
// Errors: ErrNilModel, ErrGraphNil.
// Complexity: O(V·logV).
func NodesInState(m StateModel, g *contact.Graph, s State) ([]int, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []int
	for _, id := range g.Nodes() {
		if m.CurrentState(id) == s {
			out = append(out, id)
		}
	}

	return out, nil
}

// GroupByState buckets the graph's nodes by their current state for the
// requested states (all seven when none are given). Every requested
// state appears as a key, possibly with an empty bucket; node ids within
// a bucket are ascending.
// Errors: ErrNilModel, ErrGraphNil.
// Complexity: O(V·logV + S).
func GroupByState(m StateModel, g *contact.Graph, states ...State) (map[State][]int, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(states) == 0 {
		states = States()
	}
	groups := make(map[State][]int, len(states))
	for _, s := range states {
		groups[s] = nil
	}
	for _, id := range g.Nodes() {
		s := m.CurrentState(id)
		if _, wanted := groups[s]; wanted {
			groups[s] = append(groups[s], id)
		}
	}
	for s := range groups {
		sort.Ints(groups[s])
	}

	return groups, nil
}

// MinDegree returns the minimum node degree in the graph.
// Returns ErrGraphNil on a nil graph and ErrEmptyGraph on a graph with
// no nodes — there is no sentinel degree value.
// Complexity: O(V + E).
func MinDegree(g *contact.Graph) (int, error) {
	return extremalDegree(g, func(candidate, best int) bool { return candidate < best })
}

// MaxDegree returns the maximum node degree in the graph.
// Returns ErrGraphNil on a nil graph and ErrEmptyGraph on a graph with
// no nodes.
// Complexity: O(V + E).
func MaxDegree(g *contact.Graph) (int, error) {
	return extremalDegree(g, func(candidate, best int) bool { return candidate > best })
}

// extremalDegree scans all (node, degree) pairs and keeps the winner
// under the given ordering.
func extremalDegree(g *contact.Graph, better func(candidate, best int) bool) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	ids := g.Nodes()
	if len(ids) == 0 {
		return 0, ErrEmptyGraph
	}
	best, err := g.Degree(ids[0])
	if err != nil {
		return 0, err
	}
	for _, id := range ids[1:] {
		d, err := g.Degree(id)
		if err != nil {
			return 0, err
		}
		if better(d, best) {
			best = d
		}
	}

	return best, nil
}
