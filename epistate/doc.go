// Package epistate is the thin read-only query surface between a contact
// graph and the external SEIR-style simulator that runs on top of it.
//
// # What
//
//   - The fixed compartmental mapping: Susceptible(1), Exposed(2),
//     Infectious(3), Detected_Exposed(4), Detected_Infectious(5),
//     Recovered(6), Deceased(7). Process-wide configuration, never
//     mutated.
//   - StateModel: the one-method view of the simulator this package
//     needs — the current state code per node.
//   - NodesInState / GroupByState: filter and bucket graph nodes by
//     compartmental state.
//   - MinDegree / MaxDegree: degree extrema over all nodes; an empty
//     graph yields ErrEmptyGraph rather than a sentinel value.
//
// # Why
//
// Epidemic runs are analyzed by slicing the population: how many
// occupants are infectious, which individuals died, what the contact
// degree spread looks like under an intervention. This package supplies
// exactly the node-state filtering primitive; tabular aggregation and
// export formats are out of scope and live with the caller.
//
// # Usage
//
//	infectious, err := epistate.NodesInState(model, g, epistate.Infectious)
//	groups, err := epistate.GroupByState(model, g, epistate.Infectious, epistate.Deceased)
//	lo, err := epistate.MinDegree(g)
package epistate
