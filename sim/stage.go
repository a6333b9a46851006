// Defines the Stage enum for the fixed four-echelon chain and the
// StageState struct holding one stage's mutable simulation state.

package sim

// Stage identifies one echelon of the supply chain. The chain is a fixed
// linear topology: stage i ships downstream to stage i-1 and orders
// upstream from stage i+1; the retailer faces external customer demand
// and the manufacturer produces against its own shipment line.
type Stage int

const (
	Retailer Stage = iota
	Wholesaler
	Distributor
	Manufacturer

	// NumStages is the fixed number of echelons in the game.
	NumStages = 4
)

var stageNames = [NumStages]string{"retailer", "wholesaler", "distributor", "manufacturer"}

func (s Stage) String() string {
	if s < 0 || s >= NumStages {
		return "unknown"
	}
	return stageNames[s]
}

// Downstream returns the stage that receives this stage's shipments.
// The retailer has no downstream recipient (ships to external customers).
func (s Stage) Downstream() (Stage, bool) {
	if s == Retailer {
		return 0, false
	}
	return s - 1, true
}

// Upstream returns the stage that receives this stage's orders.
// The manufacturer has no upstream recipient: its order is appended to
// its own shipment line, modeling unlimited production capacity with the
// same lead time as transit.
func (s Stage) Upstream() (Stage, bool) {
	if s == Manufacturer {
		return 0, false
	}
	return s + 1, true
}

// StageState holds one stage's inventory position and the per-week
// histories needed for reporting. Exactly one StageState per stage exists
// per run; the runner owns all four and the stepper mutates them once per
// week.
type StageState struct {
	Stage Stage

	Inventory int // units physically on hand, always >= 0
	Backorder int // unmet demand carried forward, always >= 0

	// IncomingShipments holds quantities in transit toward this stage,
	// one entry per future arrival week. IncomingOrders holds orders
	// already placed by the downstream stage, awaiting processing here.
	IncomingShipments *SupplyLine
	IncomingOrders    *SupplyLine

	// Per-week histories, appended once per simulated week in week order.
	WeeklyCost      []float64
	WeeklyInventory []int
	WeeklyBackorder []int
	WeeklyOrder     []int
}

// NewStageState creates a stage's state with the game's fixed initial
// conditions: both supply lines pre-seeded with leadTime entries of
// seedQuantity, representing shipments and orders already in flight
// before week 1.
func NewStageState(stage Stage, init InitialConditions) *StageState {
	seed := make([]int, init.LeadTimeWeeks)
	for i := range seed {
		seed[i] = init.SeedQuantity
	}
	return &StageState{
		Stage:             stage,
		Inventory:         init.Inventory,
		Backorder:         0,
		IncomingShipments: NewSupplyLine(seed...),
		IncomingOrders:    NewSupplyLine(seed...),
	}
}

// NewStageStates creates the four stage states for a fresh run, in chain
// order retailer..manufacturer.
func NewStageStates(init InitialConditions) []*StageState {
	states := make([]*StageState, NumStages)
	for i := range states {
		states[i] = NewStageState(Stage(i), init)
	}
	return states
}
