package sim

// Fixed policy constants of the simulated game. These are properties of
// the beer distribution game itself, not tunable parameters: the chain
// always has four stages and every action takes two weeks to propagate.
const (
	// DefaultLeadTimeWeeks is the transportation/information delay
	// between adjacent stages, in weeks.
	DefaultLeadTimeWeeks = 2
	// DefaultInitialInventory is each stage's on-hand inventory before week 1.
	DefaultInitialInventory = 12
	// DefaultSeedQuantity is the value of the in-flight supply line
	// entries that establish the lead time before week 1.
	DefaultSeedQuantity = 4
	// DefaultOrderQuantity substitutes for any missing or negative
	// order-decision cell.
	DefaultOrderQuantity = 4
	// DefaultDemand substitutes for any week beyond the supplied
	// external demand sequence.
	DefaultDemand = 4
	// DefaultWeeks is the standard game horizon.
	DefaultWeeks = 26
)

// CostConfig groups the weekly cost rates charged per unit held or backordered.
type CostConfig struct {
	HoldingPerUnit   float64 // cost per unit of on-hand inventory per week
	BackorderPerUnit float64 // cost per unit of unmet demand per week
}

// NewCostConfig creates a CostConfig with the given rates.
func NewCostConfig(holding, backorder float64) CostConfig {
	return CostConfig{HoldingPerUnit: holding, BackorderPerUnit: backorder}
}

// DefaultCostConfig returns the game's standard rates: 0.5 per held unit,
// 1.0 per backordered unit.
func DefaultCostConfig() CostConfig {
	return CostConfig{HoldingPerUnit: 0.5, BackorderPerUnit: 1.0}
}

// InitialConditions groups the per-stage starting state for a run.
type InitialConditions struct {
	Inventory     int // on-hand units per stage before week 1
	LeadTimeWeeks int // entries pre-seeded into each supply line
	SeedQuantity  int // value of each pre-seeded entry
}

// NewInitialConditions creates an InitialConditions with the given values.
func NewInitialConditions(inventory, leadTime, seedQty int) InitialConditions {
	return InitialConditions{Inventory: inventory, LeadTimeWeeks: leadTime, SeedQuantity: seedQty}
}

// DefaultInitialConditions returns the game's standard starting state.
func DefaultInitialConditions() InitialConditions {
	return InitialConditions{
		Inventory:     DefaultInitialInventory,
		LeadTimeWeeks: DefaultLeadTimeWeeks,
		SeedQuantity:  DefaultSeedQuantity,
	}
}

// GameConfig groups everything a run needs besides its demand sequence
// and order table.
type GameConfig struct {
	Weeks   int // number of simulated weeks (must be > 0)
	Costs   CostConfig
	Initial InitialConditions

	// DefaultDemand fills weeks beyond the supplied external demand
	// sequence. A zero value means zero fill; use DefaultGameConfig for
	// the standard game. Missing order cells are filled by the
	// OrderTable's own DefaultQuantity, not here.
	DefaultDemand int
}

// NewGameConfig creates a GameConfig with the given values.
func NewGameConfig(weeks int, costs CostConfig, init InitialConditions, defaultDemand int) GameConfig {
	return GameConfig{
		Weeks:         weeks,
		Costs:         costs,
		Initial:       init,
		DefaultDemand: defaultDemand,
	}
}

// DefaultGameConfig returns the standard game over the given horizon.
func DefaultGameConfig(weeks int) GameConfig {
	return GameConfig{
		Weeks:         weeks,
		Costs:         DefaultCostConfig(),
		Initial:       DefaultInitialConditions(),
		DefaultDemand: DefaultDemand,
	}
}
