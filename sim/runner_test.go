package sim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSimulation_SteadyWeek(t *testing.T) {
	// GIVEN the standard one-week game: demand [4], orders [[4,4,4,4]]
	cfg := DefaultGameConfig(1)
	report := RunSimulation(cfg, []int{4}, NewOrderTable([][]int{{4, 4, 4, 4}}))

	// THEN every stage costs 12*0.5 = 6.0 and the total is 24.0
	assert.Equal(t, 1, report.Weeks)
	assert.Equal(t, 24.0, report.TotalCost)
	for i, s := range report.Summaries {
		assert.Equal(t, Stage(i).String(), s.Stage)
		assert.Equal(t, 6.0, s.TotalCost)
	}
	for _, sw := range report.Series[0].Stages {
		assert.Equal(t, 12, sw.Inventory)
		assert.Equal(t, 0, sw.Backorder)
		assert.Equal(t, 4, sw.Order)
		assert.Equal(t, 6.0, sw.Cost)
	}
}

func TestRunSimulation_Deterministic(t *testing.T) {
	// GIVEN identical inputs
	cfg := DefaultGameConfig(30)
	demand := RandomDemand{Seed: 7, Min: 0, Max: 8}.Sequence(30)
	orders := NewOrderTable([][]int{{8, 2, 4, 4}, {0, 0, 0, 0}, {12, 4, 4, 9}})

	// WHEN two runs execute
	a := RunSimulation(cfg, demand, orders)
	b := RunSimulation(cfg, demand, orders)

	// THEN the reports are identical in every field
	assert.Equal(t, a, b)
}

func TestRunSimulation_ConcurrentRunsAreIndependent(t *testing.T) {
	// GIVEN the same inputs run from many goroutines at once
	cfg := DefaultGameConfig(20)
	demand := ConstantDemand(6).Sequence(20)
	orders := NewOrderTable(nil)
	baseline := RunSimulation(cfg, demand, orders)

	// WHEN eight runs execute concurrently
	reports := make([]*SimulationReport, 8)
	var wg sync.WaitGroup
	for i := range reports {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i] = RunSimulation(cfg, demand, orders)
		}(i)
	}
	wg.Wait()

	// THEN each run owned its own state and matches the baseline
	for i, r := range reports {
		assert.Equal(t, baseline, r, "run %d diverged", i)
	}
}

func TestRunSimulation_MissingInputsDefaultToFour(t *testing.T) {
	// GIVEN no demand values and no order rows at all
	cfg := DefaultGameConfig(5)
	implicit := RunSimulation(cfg, nil, NewOrderTable(nil))

	// WHEN the same run is made with everything spelled out as 4s
	demand := []int{4, 4, 4, 4, 4}
	rows := make([][]int, 5)
	for i := range rows {
		rows[i] = []int{4, 4, 4, 4}
	}
	explicit := RunSimulation(cfg, demand, NewOrderTable(rows))

	// THEN the reports are identical: every missing week and cell
	// behaved as the default 4
	assert.Equal(t, explicit, implicit)
}

func TestRunSimulation_DemandBeyondHorizonIgnored(t *testing.T) {
	// GIVEN a demand sequence longer than the horizon
	cfg := DefaultGameConfig(2)
	short := RunSimulation(cfg, []int{4, 4}, NewOrderTable(nil))
	long := RunSimulation(cfg, []int{4, 4, 99, 99}, NewOrderTable(nil))

	// THEN the extra values change nothing
	assert.Equal(t, short, long)
}

func TestRunSimulation_TotalsAreSumsOfWeeklyCosts(t *testing.T) {
	// GIVEN a bumpy demand pattern
	cfg := DefaultGameConfig(10)
	demand := []int{4, 8, 16, 2, 0, 12, 4, 4, 20, 4}
	report := RunSimulation(cfg, demand, NewOrderTable(nil))

	// THEN each stage total equals the sum of its weekly series and the
	// grand total equals the sum of the stage totals
	var grand float64
	for i := range report.Summaries {
		var sum float64
		for _, rec := range report.Series {
			sum += rec.Stages[i].Cost
		}
		assert.InDelta(t, sum, report.Summaries[i].TotalCost, 1e-9)
		grand += sum
	}
	assert.InDelta(t, grand, report.TotalCost, 1e-9)
}

func TestRunSimulation_SeriesIsWeekIndexed(t *testing.T) {
	// GIVEN a three-week run
	cfg := DefaultGameConfig(3)
	report := RunSimulation(cfg, []int{4, 10, 4}, NewOrderTable(nil))

	// THEN the series holds one record per week, 1-based for presentation
	assert.Len(t, report.Series, 3)
	for i, rec := range report.Series {
		assert.Equal(t, i+1, rec.Week)
	}
}

func TestRunSimulation_StateStaysNonNegative(t *testing.T) {
	// GIVEN violent demand swings
	cfg := DefaultGameConfig(15)
	demand := []int{0, 40, 0, 0, 35, 0, 0, 0, 50, 0, 0, 0, 0, 0, 25}
	report := RunSimulation(cfg, demand, NewOrderTable(nil))

	// THEN inventory and backorder never go negative for any stage
	for _, rec := range report.Series {
		for i, sw := range rec.Stages {
			if sw.Inventory < 0 {
				t.Errorf("week %d %s: negative inventory %d", rec.Week, Stage(i), sw.Inventory)
			}
			if sw.Backorder < 0 {
				t.Errorf("week %d %s: negative backorder %d", rec.Week, Stage(i), sw.Backorder)
			}
		}
	}
}
