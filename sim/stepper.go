// Implements the week stepper, the core algorithm: the four ordered
// phases that advance every stage's state by exactly one simulated week.

package sim

import "github.com/sirupsen/logrus"

// StepWeek advances all stages by one week. Phases are strictly
// sequential barriers; within a phase every stage acts on the pre-phase
// snapshot. That isolation is structural here: arrivals pop only a
// stage's own shipment line, settlement at stage i pushes only onto
// stage i-1's shipment line (already popped in phase 1), and order
// placement pushes only onto lines drained in earlier phases. No stage
// ever observes another stage's same-phase mutation.
//
//	1. shipment arrival: pop own shipment line into inventory
//	2. settlement + dispatch, stage order 0->3: satisfy demand + backorder
//	   from inventory, ship downstream
//	3. order placement, stage order 0->3: record order, push upstream
//	   (manufacturer pushes its own shipment line)
//	4. cost accrual per stage
//
// Orders placed this week only affect supply lines, which are only
// drained at the start of a future week, so they cannot influence this
// week's own settlement.
func StepWeek(states []*StageState, week int, externalDemand int, orders [NumStages]int, costs CostConfig) {
	logrus.Debugf("[week %03d] external demand=%d orders=%v", week, externalDemand, orders)

	// Phase 1: shipments dispatched two weeks ago arrive now.
	for _, st := range states {
		arrived := st.IncomingShipments.Pop()
		st.Inventory += arrived
		logrus.Tracef("[week %03d] %s receives %d units (inventory=%d)", week, st.Stage, arrived, st.Inventory)
	}

	// Phase 2: resolve demand and dispatch shipments, stage order 0->3.
	for _, st := range states {
		demand := externalDemand
		if st.Stage != Retailer {
			demand = st.IncomingOrders.Pop()
		}
		totalDemand := demand + st.Backorder
		shipment := min(totalDemand, st.Inventory)
		st.Inventory -= shipment
		st.Backorder = max(0, totalDemand-shipment)

		if dst, ok := st.Stage.Downstream(); ok {
			states[dst].IncomingShipments.Push(shipment)
		}
		logrus.Tracef("[week %03d] %s ships %d of %d demanded (inventory=%d backorder=%d)",
			week, st.Stage, shipment, totalDemand, st.Inventory, st.Backorder)
	}

	// Phase 3: place this week's orders.
	for _, st := range states {
		qty := orders[st.Stage]
		st.WeeklyOrder = append(st.WeeklyOrder, qty)
		if up, ok := st.Stage.Upstream(); ok {
			states[up].IncomingOrders.Push(qty)
		} else {
			// Unlimited production: the manufacturer's order becomes its
			// own future shipment after the same lead time as transit.
			st.IncomingShipments.Push(qty)
		}
	}

	// Phase 4: accrue holding and backorder costs.
	for _, st := range states {
		weekCost := float64(st.Inventory)*costs.HoldingPerUnit + float64(st.Backorder)*costs.BackorderPerUnit
		st.WeeklyCost = append(st.WeeklyCost, weekCost)
		st.WeeklyInventory = append(st.WeeklyInventory, st.Inventory)
		st.WeeklyBackorder = append(st.WeeklyBackorder, st.Backorder)
	}
}
