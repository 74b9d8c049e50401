package champion

import (
	"fmt"
	"time"
)

// CostTable holds per-rank mana costs and base cooldowns of a champion's abilities
type CostTable struct {
	ManaCost [NumKeys][]int
	Cooldown [NumKeys][]time.Duration
}

// ManaCostAt returns the cost of key at level, or 0 when unknown. Levels
// past the last rank use the last rank.
func (t *CostTable) ManaCostAt(key AbilityKey, level int) int {
	if t == nil || !key.Valid() {
		return 0
	}
	i, ok := rankIndex(level, len(t.ManaCost[key]))
	if !ok {
		return 0
	}
	return t.ManaCost[key][i]
}

// CooldownAt returns the base cooldown of key at level, or 0 when unknown.
// Levels past the last rank use the last rank.
func (t *CostTable) CooldownAt(key AbilityKey, level int) time.Duration {
	if t == nil || !key.Valid() {
		return 0
	}
	i, ok := rankIndex(level, len(t.Cooldown[key]))
	if !ok {
		return 0
	}
	return t.Cooldown[key][i]
}

func rankIndex(level, ranks int) (int, bool) {
	if level <= 0 || ranks == 0 {
		return 0, false
	}
	if level > ranks {
		return ranks - 1, true
	}
	return level - 1, true
}

// Validate checks that every basic ability has matching, non-empty rank arrays
func (t *CostTable) Validate() error {
	if t == nil {
		return fmt.Errorf("cost table is nil")
	}
	for _, key := range []AbilityKey{Q, W, E, R} {
		costs, cooldowns := t.ManaCost[key], t.Cooldown[key]
		if len(cooldowns) == 0 {
			return fmt.Errorf("ability %s has no cooldown ranks", key)
		}
		if len(costs) != len(cooldowns) {
			return fmt.Errorf("ability %s has %d cost ranks but %d cooldown ranks", key, len(costs), len(cooldowns))
		}
		for i, cd := range cooldowns {
			if cd < 0 {
				return fmt.Errorf("ability %s rank %d has negative cooldown", key, i+1)
			}
		}
	}
	return nil
}
