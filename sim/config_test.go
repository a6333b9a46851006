package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCostConfig_FieldEquivalence(t *testing.T) {
	got := NewCostConfig(0.5, 1.0)
	want := CostConfig{HoldingPerUnit: 0.5, BackorderPerUnit: 1.0}
	assert.Equal(t, want, got)
}

func TestDefaultCostConfig_StandardRates(t *testing.T) {
	got := DefaultCostConfig()
	assert.Equal(t, 0.5, got.HoldingPerUnit)
	assert.Equal(t, 1.0, got.BackorderPerUnit)
}

func TestNewInitialConditions_FieldEquivalence(t *testing.T) {
	got := NewInitialConditions(12, 2, 4)
	want := InitialConditions{Inventory: 12, LeadTimeWeeks: 2, SeedQuantity: 4}
	assert.Equal(t, want, got)
}

func TestNewGameConfig_FieldEquivalence(t *testing.T) {
	costs := NewCostConfig(0.25, 2.0)
	init := NewInitialConditions(10, 2, 3)
	got := NewGameConfig(52, costs, init, 6)
	want := GameConfig{Weeks: 52, Costs: costs, Initial: init, DefaultDemand: 6}
	assert.Equal(t, want, got)
}

func TestDefaultGameConfig_StandardGame(t *testing.T) {
	got := DefaultGameConfig(26)
	want := GameConfig{
		Weeks:         26,
		Costs:         CostConfig{HoldingPerUnit: 0.5, BackorderPerUnit: 1.0},
		Initial:       InitialConditions{Inventory: 12, LeadTimeWeeks: 2, SeedQuantity: 4},
		DefaultDemand: 4,
	}
	assert.Equal(t, want, got)
}

func TestNewGameConfig_ZeroValues_NoDefaults(t *testing.T) {
	// Zero-value arguments must NOT inject non-zero defaults
	got := NewGameConfig(0, CostConfig{}, InitialConditions{}, 0)
	assert.Equal(t, GameConfig{}, got)
}
