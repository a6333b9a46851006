// Package sim provides the core discrete-time engine for the beer
// distribution game: four sequential supply-chain stages (retailer,
// wholesaler, distributor, manufacturer) holding inventory, filling
// downstream orders, and placing upstream orders under a fixed two-week
// lead time.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - supplyline.go: the FIFO delay line carrying in-transit shipments and orders
//   - stage.go: per-stage mutable state and the fixed chain topology
//   - stepper.go: the four ordered phases executed once per simulated week
//
// runner.go drives the stepper across the configured horizon and folds the
// accumulated per-week histories into a SimulationReport (report.go).
//
// # Inputs
//
// The engine computes nothing on its own behalf: external customer demand
// arrives as a precomputed sequence (demand.go) and each stage's weekly
// order quantity comes from an OrderTable (orders.go). Order-decision
// policies that generate tables live in sim/policy; the engine itself
// never chooses an order quantity.
//
// A run is a pure, synchronous computation: it cannot fail, performs no
// I/O, and two runs with identical inputs produce identical reports.
package sim
