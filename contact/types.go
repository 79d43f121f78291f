// Package contact defines the central Graph, Node, and Edge types of a
// synthetic contact network, and provides thread-safe primitives for
// building, querying, and cloning contact graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for
// nodes, muEdgeAdj for edges and adjacency), so you can safely mutate
// graphs across goroutines with minimal contention. Clone holds both read
// locks for its whole pass, so a copy is always atomic with respect to
// its source.
//
// This file declares Node, Edge, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNegativeNodeID - node id is negative.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - edge endpoints are the same node.
//	ErrEmptyLabel     - edge label is the empty string.
package contact

import (
	"errors"
	"sync"
)

// Sentinel errors for contact graph operations.
var (
	// ErrNegativeNodeID indicates a node id below zero; node identity is a
	// dense non-negative integer index.
	ErrNegativeNodeID = errors.New("contact: node id must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("contact: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("contact: edge not found")

	// ErrSelfLoop indicates a self-loop was attempted; individuals do not
	// contact themselves.
	ErrSelfLoop = errors.New("contact: self-loop not allowed")

	// ErrEmptyLabel indicates an edge without a relation label.
	ErrEmptyLabel = errors.New("contact: edge label is empty")
)

// Node represents one individual in the population.
//
// ID uniquely identifies the individual within its Graph; construction
// pipelines use the dense range 0..population-1. Location and Ethnicity
// are set once at insertion and immutable thereafter: AddNode on an
// existing id is a no-op, and no mutation pathway exists.
type Node struct {
	// ID is the unique identifier for this individual.
	ID int

	// Location is the id of the physical structure housing the individual.
	Location int

	// Ethnicity is an integer category drawn from a fixed categorical set.
	Ethnicity int
}

// Edge represents an undirected contact relation between two individuals.
//
// Endpoints are stored in canonical order (From <= To). Label names the
// relation ("neighbor", "proximity", "food", ...); at most one edge per
// (pair, label) exists, and re-adding the same (pair, label) overwrites
// the weight (last write wins).
type Edge struct {
	// From is the smaller endpoint id.
	From int

	// To is the larger endpoint id.
	To int

	// Label is the mandatory relation category of this contact.
	Label string

	// Weight is the contact intensity used by downstream simulators.
	Weight float64
}

// Graph is the core in-memory contact network.
//
// It is always undirected, weighted, loop-free, and simple per
// (pair, label). muNode protects the nodes map; muEdgeAdj protects the
// adjacency structure and the edge counter.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// nodes maps node id → individual.
	nodes map[int]*Node

	// adjacency[u][v][label] = edge between u and v carrying label.
	// Both directions are populated and share the same *Edge.
	adjacency map[int]map[int]map[string]*Edge

	// edgeCount tracks distinct (pair, label) edges.
	edgeCount int
}

// NewGraph creates an empty contact Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]map[string]*Edge),
	}
}
