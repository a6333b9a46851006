// Builds and renders the SimulationReport, the run's only externally
// visible product.

package sim

import "fmt"

// StageWeek is one stage's recorded state at the end of one week.
type StageWeek struct {
	Inventory int     `json:"inventory"`
	Backorder int     `json:"backorder"`
	Order     int     `json:"order"`
	Cost      float64 `json:"cost"`
}

// WeekRecord is the per-stage snapshot for one week, in chain order
// retailer..manufacturer.
type WeekRecord struct {
	Week   int                  `json:"week"` // 1-based, matching presentation
	Stages [NumStages]StageWeek `json:"stages"`
}

// StageSummary is one stage's aggregate over the whole run.
type StageSummary struct {
	Stage     string  `json:"stage"`
	TotalCost float64 `json:"total_cost"`
}

// SimulationReport is the immutable result of a run: per-stage cumulative
// costs, the overall total, and the full per-week time series needed to
// reconstruct any chart without re-deriving simulation state.
type SimulationReport struct {
	Weeks     int                     `json:"weeks"`
	Summaries [NumStages]StageSummary `json:"stage_summaries"`
	TotalCost float64                 `json:"total_cost"`
	Series    []WeekRecord            `json:"series"`
}

// buildReport folds the four stage histories into a report. Histories
// shorter than weeks should not occur but are tolerated: missing indices
// read as zero.
func buildReport(states []*StageState, weeks int) *SimulationReport {
	report := &SimulationReport{
		Weeks:  weeks,
		Series: make([]WeekRecord, weeks),
	}

	for w := 0; w < weeks; w++ {
		rec := WeekRecord{Week: w + 1}
		for i, st := range states {
			rec.Stages[i] = StageWeek{
				Inventory: intAt(st.WeeklyInventory, w),
				Backorder: intAt(st.WeeklyBackorder, w),
				Order:     intAt(st.WeeklyOrder, w),
				Cost:      floatAt(st.WeeklyCost, w),
			}
		}
		report.Series[w] = rec
	}

	for i, st := range states {
		var total float64
		for _, c := range st.WeeklyCost {
			total += c
		}
		report.Summaries[i] = StageSummary{Stage: st.Stage.String(), TotalCost: total}
		report.TotalCost += total
	}
	return report
}

func intAt(values []int, i int) int {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

func floatAt(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

// Print displays the aggregated run results, one line per stage plus the
// grand total.
func (r *SimulationReport) Print() {
	fmt.Println("=== Beer Game Results ===")
	fmt.Printf("Simulated weeks      : %d\n", r.Weeks)
	for _, s := range r.Summaries {
		fmt.Printf("%-13s total cost : %.2f\n", s.Stage, s.TotalCost)
	}
	fmt.Printf("Overall total cost   : %.2f\n", r.TotalCost)
}
