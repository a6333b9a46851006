// Package policy provides order-decision policies for the beer game.
// A policy generates the full OrderTable consumed by the simulation
// runner; the engine in package sim never computes an order quantity
// itself.
package policy

import (
	"fmt"

	"github.com/beergame-sim/beergame-sim/sim"
)

// OrderPolicy produces one order row per week from the external demand
// sequence known before the run.
type OrderPolicy interface {
	// Table returns the order decisions for len(demand) weeks.
	Table(demand []int) sim.OrderTable
}

// FixedOrder orders the same quantity at every stage every week.
type FixedOrder struct {
	Quantity int
}

func (p *FixedOrder) Table(demand []int) sim.OrderTable {
	rows := make([][]int, len(demand))
	for w := range rows {
		row := make([]int, sim.NumStages)
		for i := range row {
			row[i] = p.Quantity
		}
		rows[w] = row
	}
	return sim.NewOrderTable(rows)
}

// BaseStock implements a base-stock heuristic: forecast demand with a
// moving average, target a stock position of forecast * (leadTime + 1)
// plus a safety buffer, and order the shortfall between target and the
// current inventory position (on hand, minus backlog, plus orders still
// in the pipeline). Orders are clamped at 0.
//
// Every stage places the same quantity each week: stages upstream of the
// retailer see the retailer's demand signal only after the lead time, so
// with no mid-run feedback the retailer forecast is the best shared
// estimate available before the run.
type BaseStock struct {
	SafetyStock int // buffer added to the target position
	Window      int // moving-average window in weeks, min 1
	LeadTime    int // weeks between order placement and arrival
	Initial     sim.InitialConditions
}

// NewBaseStock creates a BaseStock policy over the standard game's
// initial conditions.
func NewBaseStock(safetyStock, window int) *BaseStock {
	return &BaseStock{
		SafetyStock: safetyStock,
		Window:      window,
		LeadTime:    sim.DefaultLeadTimeWeeks,
		Initial:     sim.DefaultInitialConditions(),
	}
}

func (p *BaseStock) Table(demand []int) sim.OrderTable {
	window := p.Window
	if window < 1 {
		window = 1
	}

	// Track the retailer's projected position week by week: seeded
	// shipments arrive for the first LeadTime weeks, then each order
	// placed at week w arrives at week w+LeadTime.
	inventory := p.Initial.Inventory
	backlog := 0
	placed := make([]int, 0, len(demand))

	rows := make([][]int, len(demand))
	for w := range demand {
		arriving := p.Initial.SeedQuantity
		if w >= p.LeadTime {
			arriving = placed[w-p.LeadTime]
		}
		inventory += arriving

		want := demand[w] + backlog
		shipped := min(want, inventory)
		inventory -= shipped
		backlog = want - shipped

		forecast := movingAverage(demand[:w+1], window)

		// Units still in transit: whatever arrives in weeks w+1..w+LeadTime-1,
		// which is a seed entry early on and a past order thereafter.
		pipeline := 0
		for k := 1; k < p.LeadTime; k++ {
			if w+k < p.LeadTime {
				pipeline += p.Initial.SeedQuantity
			} else {
				pipeline += placed[w+k-p.LeadTime]
			}
		}

		target := forecast*(p.LeadTime+1) + p.SafetyStock
		position := inventory - backlog + pipeline
		order := max(0, target-position)
		placed = append(placed, order)

		row := make([]int, sim.NumStages)
		for i := range row {
			row[i] = order
		}
		rows[w] = row
	}
	return sim.NewOrderTable(rows)
}

// movingAverage returns the integer mean of the last window values.
func movingAverage(values []int, window int) int {
	start := max(0, len(values)-window)
	sum, count := 0, 0
	for _, v := range values[start:] {
		sum += v
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / count
}

// NewOrderPolicy creates an order policy by name.
// Valid names: "fixed", "base-stock".
// For fixed, quantity sets the constant order; for base-stock,
// safetyStock and window configure the heuristic.
func NewOrderPolicy(name string, quantity, safetyStock, window int) OrderPolicy {
	switch name {
	case "fixed":
		return &FixedOrder{Quantity: quantity}
	case "base-stock":
		return NewBaseStock(safetyStock, window)
	default:
		panic(fmt.Sprintf("unknown order policy %q; valid policies: [fixed, base-stock]", name))
	}
}
