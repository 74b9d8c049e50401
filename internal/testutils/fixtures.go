package testutils

import (
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// CreateTestCostTable gives every basic ability three ranks with the same
// mana cost and base cooldown
func CreateTestCostTable(mana int, cooldown time.Duration) *champion.CostTable {
	costs := &champion.CostTable{}
	for _, key := range []champion.AbilityKey{champion.Q, champion.W, champion.E, champion.R} {
		costs.ManaCost[key] = []int{mana, mana, mana}
		costs.Cooldown[key] = []time.Duration{cooldown, cooldown, cooldown}
	}
	return costs
}

// CreateTestRegistry builds a registry and panics on invalid modes
func CreateTestRegistry(modes map[champion.AbilityKey]champion.CastMode) *champion.Registry {
	registry, err := champion.NewRegistry(modes)
	if err != nil {
		panic(err)
	}
	return registry
}

// CreateTestChampion bundles modes with a cost table of 50 mana and 10s cooldowns
func CreateTestChampion(name string, modes map[champion.AbilityKey]champion.CastMode) *champion.Data {
	return &champion.Data{
		Name:      name,
		Version:   "14.1.1",
		CastModes: CreateTestRegistry(modes),
		Costs:     CreateTestCostTable(50, 10*time.Second),
	}
}

// CreateTestGameState is an alive champion with every ability at level and the given resource
func CreateTestGameState(level int, mana float64) champion.GameState {
	state := champion.GameState{ResourceValue: mana}
	for _, key := range []champion.AbilityKey{champion.Q, champion.W, champion.E, champion.R} {
		state.AbilityLevels[key] = level
	}
	return state
}
