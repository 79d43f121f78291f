package epistate_test

import (
	"fmt"

	"github.com/katalvlaran/campnet/contact"
	"github.com/katalvlaran/campnet/epistate"
)

// tableModel answers state lookups from a fixed table.
type tableModel map[int]epistate.State

func (m tableModel) CurrentState(node int) epistate.State { return m[node] }

// Example groups a small camp by compartment and reports the degree
// spread of its contact graph.
func Example() {
	g := contact.NewGraph()
	for id := 0; id < 4; id++ {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge(0, 1, 1.0, "neighbor")
	_ = g.AddEdge(0, 2, 1.0, "neighbor")
	_ = g.AddEdge(0, 3, 1.0, "food")

	model := tableModel{
		0: epistate.Infectious,
		1: epistate.Susceptible,
		2: epistate.Susceptible,
		3: epistate.Recovered,
	}

	sick, _ := epistate.NodesInState(model, g, epistate.Infectious)
	healthy, _ := epistate.NodesInState(model, g, epistate.Susceptible)
	min, _ := epistate.MinDegree(g)
	max, _ := epistate.MaxDegree(g)

	fmt.Println("infectious:", sick)
	fmt.Println("susceptible:", healthy)
	fmt.Println("degree range:", min, "..", max)

	// Output:
	// infectious: [0]
	// susceptible: [1 2]
	// degree range: 1 .. 3
}
