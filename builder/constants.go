package builder

// Canonical relation labels used by the construction pipeline. Callers
// may pass their own labels to any wiring function; these are the names
// the intervention derivations in package intervene thin by default.
const (
	// LabelNeighbor marks intra-structure household contacts (the clique
	// wired by AssignPopulation).
	LabelNeighbor = "neighbor"

	// LabelProximity marks ethnicity-gated contacts between spatially
	// close structures (ConnectNeighbors).
	LabelProximity = "proximity"

	// LabelFood marks shared-queue contacts (ConnectFoodQueue).
	LabelFood = "food"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultEthnicities is the size of the categorical ethnicity set.
	defaultEthnicities = 8

	// queueWindow is the number of forward queue positions each pool
	// member is connected to; contact locality decays after this many
	// places in the queue.
	queueWindow = 5
)

// Stable method tags for error context.
const (
	methodAssign    = "AssignPopulation"
	methodNeighbors = "ConnectNeighbors"
	methodFoodQueue = "ConnectFoodQueue"
)
