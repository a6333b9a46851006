package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport_ShortHistoriesReadAsZero(t *testing.T) {
	// Histories shorter than the horizon should not occur, but the
	// report tolerates them by substituting 0 for missing indices.
	states := NewStageStates(DefaultInitialConditions())
	StepWeek(states, 0, 4, [NumStages]int{4, 4, 4, 4}, DefaultCostConfig())

	report := buildReport(states, 3)

	assert.Len(t, report.Series, 3)
	assert.Equal(t, 12, report.Series[0].Stages[Retailer].Inventory)
	for w := 1; w < 3; w++ {
		for i := 0; i < NumStages; i++ {
			assert.Equal(t, StageWeek{}, report.Series[w].Stages[i], "week %d stage %d", w, i)
		}
	}
	// totals still reflect only the recorded week
	assert.Equal(t, 24.0, report.TotalCost)
}
