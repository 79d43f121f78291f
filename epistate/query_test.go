package epistate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campnet/contact"
	"github.com/katalvlaran/campnet/epistate"
)

// stubModel is a fixed node → state table standing in for the external
// simulator. Nodes missing from the table report the zero State, which
// is outside the valid code range.
type stubModel map[int]epistate.State

func (m stubModel) CurrentState(node int) epistate.State { return m[node] }

// buildCamp wires a small five-node graph: a triangle 0-1-2 plus a
// pendant 3 and an isolate 4.
func buildCamp(t *testing.T) *contact.Graph {
	t.Helper()
	g := contact.NewGraph()
	for id := 0; id < 5; id++ {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	require.NoError(t, g.AddEdge(0, 1, 1, "neighbor"))
	require.NoError(t, g.AddEdge(1, 2, 1, "neighbor"))
	require.NoError(t, g.AddEdge(0, 2, 1, "neighbor"))
	require.NoError(t, g.AddEdge(2, 3, 1, "food"))

	return g
}

func TestNodesInState(t *testing.T) {
	g := buildCamp(t)
	m := stubModel{
		0: epistate.Susceptible,
		1: epistate.Infectious,
		2: epistate.Susceptible,
		3: epistate.Recovered,
		4: epistate.Susceptible,
	}

	got, err := epistate.NodesInState(m, g, epistate.Susceptible)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, got)

	got, err = epistate.NodesInState(m, g, epistate.Deceased)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = epistate.NodesInState(nil, g, epistate.Susceptible)
	assert.ErrorIs(t, err, epistate.ErrNilModel)
	_, err = epistate.NodesInState(m, nil, epistate.Susceptible)
	assert.ErrorIs(t, err, epistate.ErrGraphNil)
}

func TestGroupByState_AllStates(t *testing.T) {
	g := buildCamp(t)
	m := stubModel{
		0: epistate.Exposed,
		1: epistate.Exposed,
		2: epistate.Infectious,
		3: epistate.Deceased,
		4: epistate.Susceptible,
	}

	groups, err := epistate.GroupByState(m, g)
	require.NoError(t, err)

	// Every state has a bucket, populated or not.
	assert.Len(t, groups, 7)
	assert.Equal(t, []int{0, 1}, groups[epistate.Exposed])
	assert.Equal(t, []int{2}, groups[epistate.Infectious])
	assert.Equal(t, []int{3}, groups[epistate.Deceased])
	assert.Equal(t, []int{4}, groups[epistate.Susceptible])
	assert.Empty(t, groups[epistate.Recovered])
	assert.Empty(t, groups[epistate.DetectedExposed])
}

func TestGroupByState_Subset(t *testing.T) {
	g := buildCamp(t)
	m := stubModel{0: epistate.Infectious, 2: epistate.Infectious, 3: epistate.DetectedInfectious}

	groups, err := epistate.GroupByState(m, g, epistate.Infectious, epistate.DetectedInfectious)
	require.NoError(t, err)

	assert.Len(t, groups, 2)
	assert.Equal(t, []int{0, 2}, groups[epistate.Infectious])
	assert.Equal(t, []int{3}, groups[epistate.DetectedInfectious])
	_, present := groups[epistate.Susceptible]
	assert.False(t, present, "unrequested states must not appear")
}

func TestDegreeExtremes(t *testing.T) {
	g := buildCamp(t)

	min, err := epistate.MinDegree(g)
	require.NoError(t, err)
	assert.Equal(t, 0, min, "isolate node 4")

	max, err := epistate.MaxDegree(g)
	require.NoError(t, err)
	assert.Equal(t, 3, max, "node 2 carries two household plus one food contact")
}

func TestDegreeExtremes_Errors(t *testing.T) {
	_, err := epistate.MinDegree(nil)
	assert.ErrorIs(t, err, epistate.ErrGraphNil)
	_, err = epistate.MaxDegree(nil)
	assert.ErrorIs(t, err, epistate.ErrGraphNil)

	empty := contact.NewGraph()
	_, err = epistate.MinDegree(empty)
	assert.ErrorIs(t, err, epistate.ErrEmptyGraph)
	_, err = epistate.MaxDegree(empty)
	assert.ErrorIs(t, err, epistate.ErrEmptyGraph)
}

func TestStateStringAndParse(t *testing.T) {
	assert.Equal(t, "Susceptible", epistate.Susceptible.String())
	assert.Equal(t, "Detected_Exposed", epistate.DetectedExposed.String())
	assert.Equal(t, "Unknown(0)", epistate.State(0).String())
	assert.Equal(t, "Unknown(42)", epistate.State(42).String())

	assert.True(t, epistate.Deceased.Valid())
	assert.False(t, epistate.State(8).Valid())

	s, err := epistate.ParseState("Detected_Infectious")
	require.NoError(t, err)
	assert.Equal(t, epistate.DetectedInfectious, s)

	_, err = epistate.ParseState("Zombie")
	assert.ErrorIs(t, err, epistate.ErrUnknownState)

	want := []epistate.State{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, want, epistate.States())
}
