// Package epistate: the fixed compartmental state mapping shared by
// every query. The state-to-integer codes are configuration, not mutable
// state: they match the external simulator's wire codes and never change
// at runtime.
package epistate

import (
	"errors"
	"strconv"
)

// Sentinel errors for state queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("epistate: graph is nil")

	// ErrNilModel is returned if a nil simulator model is passed.
	ErrNilModel = errors.New("epistate: model is nil")

	// ErrEmptyGraph is returned by degree-extremum queries on a graph
	// with no nodes; there is no sentinel degree value.
	ErrEmptyGraph = errors.New("epistate: graph has no nodes")

	// ErrUnknownState is returned by ParseState for an unrecognized name.
	ErrUnknownState = errors.New("epistate: unknown state name")
)

// State is a compartmental state code as reported by the external
// SEIR-style simulator. Codes are fixed and process-wide.
type State int

// The fixed state-to-integer categorical mapping.
const (
	Susceptible        State = 1
	Exposed            State = 2
	Infectious         State = 3
	DetectedExposed    State = 4
	DetectedInfectious State = 5
	Recovered          State = 6
	Deceased           State = 7
)

// stateNames is the canonical code → name table.
var stateNames = map[State]string{
	Susceptible:        "Susceptible",
	Exposed:            "Exposed",
	Infectious:         "Infectious",
	DetectedExposed:    "Detected_Exposed",
	DetectedInfectious: "Detected_Infectious",
	Recovered:          "Recovered",
	Deceased:           "Deceased",
}

// String returns the canonical state name, or "Unknown(<code>)" for a
// code outside the fixed mapping.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "Unknown(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the seven fixed states.
func (s State) Valid() bool {
	_, ok := stateNames[s]

	return ok
}

// States returns the seven states in ascending code order.
func States() []State {
	return []State{
		Susceptible, Exposed, Infectious,
		DetectedExposed, DetectedInfectious,
		Recovered, Deceased,
	}
}

// ParseState maps a canonical state name back to its code.
// Returns ErrUnknownState for any other string.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}

	return 0, ErrUnknownState
}
