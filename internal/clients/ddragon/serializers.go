package ddragon

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

type championResponse struct {
	Data map[string]championData `json:"data"`
}

type championData struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Spells []spellData `json:"spells"`
}

type spellData struct {
	ID       string    `json:"id"`
	Cooldown []float64 `json:"cooldown"` // seconds per rank
	Cost     []float64 `json:"cost"`
	CostType string    `json:"costType"`
	MaxRank  int       `json:"maxrank"`
}

var spellKeys = [...]champion.AbilityKey{champion.Q, champion.W, champion.E, champion.R}

func (r championResponse) find(id string) (championData, bool) {
	if data, ok := r.Data[id]; ok {
		return data, true
	}
	for key, data := range r.Data {
		if strings.EqualFold(key, id) {
			return data, true
		}
	}
	return championData{}, false
}

func (d championData) costTable() (*champion.CostTable, error) {
	if len(d.Spells) != len(spellKeys) {
		return nil, fmt.Errorf("expected %d spells, got %d", len(spellKeys), len(d.Spells))
	}

	costs := &champion.CostTable{}
	for i, key := range spellKeys {
		spell := d.Spells[i]
		if len(spell.Cooldown) == 0 {
			return nil, fmt.Errorf("spell %s has no cooldown ranks", spell.ID)
		}

		cooldowns := make([]time.Duration, len(spell.Cooldown))
		for rank, seconds := range spell.Cooldown {
			cooldowns[rank] = time.Duration(math.Round(seconds * 1000)) * time.Millisecond
		}

		// spells without a resource cost list zeros or nothing at all
		mana := make([]int, len(spell.Cooldown))
		if len(spell.Cost) > 0 {
			if len(spell.Cost) != len(spell.Cooldown) {
				return nil, fmt.Errorf("spell %s has %d cost ranks but %d cooldown ranks",
					spell.ID, len(spell.Cost), len(spell.Cooldown))
			}
			for rank, cost := range spell.Cost {
				mana[rank] = int(math.Round(cost))
			}
		}

		costs.Cooldown[key] = cooldowns
		costs.ManaCost[key] = mana
	}

	if err := costs.Validate(); err != nil {
		return nil, err
	}
	return costs, nil
}
