package display

import (
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/caster"
)

// Frame is one JSON message pushed to display clients
type Frame struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	Champion string `json:"champion,omitempty"`
	Key      string `json:"key,omitempty"`
	AtMS     int64  `json:"at_ms,omitempty"`

	RecastsRemaining *int  `json:"recasts_remaining,omitempty"`
	DurationMS       int64 `json:"duration_ms,omitempty"`

	// status frames only
	Active    *bool                    `json:"active,omitempty"`
	Selected  string                   `json:"selected,omitempty"`
	Abilities map[string]AbilityStatus `json:"abilities,omitempty"`
}

type AbilityStatus struct {
	OnCooldown       bool `json:"on_cooldown"`
	RecastsRemaining int  `json:"recasts_remaining"`
}

func eventFrame(e events.Event) Frame {
	f := Frame{
		Type:     string(e.GetType()),
		ID:       e.GetID(),
		Champion: e.GetChampion(),
		Key:      e.GetKey().String(),
		AtMS:     e.GetTime().UnixMilli(),
	}
	switch ev := e.(type) {
	case *events.AbilityRecastEvent:
		remaining := ev.RecastsRemaining
		f.RecastsRemaining = &remaining
	case *events.CooldownStartedEvent:
		f.DurationMS = ev.Duration.Milliseconds()
	}
	return f
}

func statusFrame(st caster.Status) Frame {
	active := st.Active
	f := Frame{
		Type:      "status",
		Champion:  st.Champion,
		Active:    &active,
		Abilities: make(map[string]AbilityStatus),
	}
	if st.Selected != champion.None {
		f.Selected = st.Selected.String()
	}
	for _, key := range champion.Keys {
		cd := st.Cooldowns[key]
		f.Abilities[key.String()] = AbilityStatus{
			OnCooldown:       cd.OnCooldown,
			RecastsRemaining: cd.RecastsRemaining,
		}
	}
	return f
}
