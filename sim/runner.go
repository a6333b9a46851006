// Drives the week stepper across the configured horizon and produces the
// final report.

package sim

import "github.com/sirupsen/logrus"

// RunSimulation executes cfg.Weeks weeks of the game against the given
// external demand sequence and order table, returning the completed
// report. Weeks run in strict increasing order: each week's supply line
// reads depend on pushes from exactly leadTime weeks prior, so there is
// no parallelism within a run. The four stage states are created fresh
// here and owned exclusively by this call; concurrent callers each get
// their own set.
//
// Demand values beyond cfg.Weeks are ignored; weeks beyond the supplied
// sequence fall back to cfg.DefaultDemand. Missing order rows or cells
// resolve through the table's own defaulting. The run cannot fail.
func RunSimulation(cfg GameConfig, externalDemand []int, orders OrderTable) *SimulationReport {
	states := NewStageStates(cfg.Initial)

	logrus.Infof("Starting simulation: %d weeks, initial inventory=%d, lead time=%d weeks",
		cfg.Weeks, cfg.Initial.Inventory, cfg.Initial.LeadTimeWeeks)

	for week := 0; week < cfg.Weeks; week++ {
		demand := cfg.DefaultDemand
		if week < len(externalDemand) {
			demand = externalDemand[week]
		}
		StepWeek(states, week, demand, orders.Row(week), cfg.Costs)
	}

	report := buildReport(states, cfg.Weeks)
	logrus.Infof("Simulation ended: total cost %.2f over %d weeks", report.TotalCost, report.Weeks)
	return report
}
