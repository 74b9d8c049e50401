package castmodes

import (
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

var builtin = map[string]map[champion.AbilityKey]champion.CastMode{
	"Velkoz": {
		champion.Q: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Instant:    true,
			MaxRecasts: 1,
			Window:     1150 * time.Millisecond,
		}),
		champion.W: champion.NormalCast(),
		champion.E: champion.NormalCast(),
		champion.R: champion.NormalCast(),
	},
	"Ahri": {
		champion.Q: champion.NormalCast(),
		champion.W: champion.InstantCast(),
		champion.E: champion.NormalCast(),
		champion.R: champion.InstantCast().WithRecast(champion.RecastPolicy{
			Instant:    true,
			MaxRecasts: 2,
			Window:     10 * time.Second,
		}),
	},
	"Zoe": {
		champion.Q: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			MaxRecasts: 1,
			Window:     6 * time.Second,
		}),
		champion.W: champion.NormalCast(),
		champion.E: champion.NormalCast(),
		champion.R: champion.NormalCast(),
	},
	"Xerath": {
		// charged on press, fired on release
		champion.Q: champion.InstantCast().WithRecast(champion.RecastPolicy{
			OnKeyUp:    true,
			MaxRecasts: 1,
			Window:     4 * time.Second,
		}),
		champion.W: champion.NormalCast(),
		champion.E: champion.NormalCast(),
		champion.R: champion.InstantCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			MaxRecasts: 3,
			Window:     10 * time.Second,
		}),
	},
	"Annie": {
		champion.Q: champion.PointAndClickCast(),
		champion.W: champion.NormalCast(),
		champion.E: champion.InstantCast(),
		champion.R: champion.NormalCast(),
	},
}

// Builtin returns a catalog of the champions supported out of the box
func Builtin() *Catalog {
	c := NewCatalog()
	for name, modes := range builtin {
		if err := c.Add(name, modes); err != nil {
			panic(err)
		}
	}
	return c
}
