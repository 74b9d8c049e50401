package champion

import (
	"fmt"
	"time"
)

// RecastPolicy describes how an ability can be reactivated after its first cast
type RecastPolicy struct {
	Instant bool // recast fires on key press
	Normal  bool // recast needs a confirming click
	OnKeyUp bool // recast fires when the key is released

	MaxRecasts int
	Window     time.Duration
}

// CastMode is the immutable casting configuration of a single ability
type CastMode struct {
	Castable      bool
	Instant       bool
	Normal        bool
	PointAndClick bool
	Recast        *RecastPolicy
}

func (m CastMode) HasRecast() bool {
	return m.Recast != nil
}

// RecastOnKeyUp reports whether the recast of this ability is bound to key release
func (m CastMode) RecastOnKeyUp() bool {
	return m.Recast != nil && m.Recast.OnKeyUp
}

// InstantCast is an ability that fires on key press
func InstantCast() CastMode {
	return CastMode{Castable: true, Instant: true}
}

// NormalCast is an ability that needs a confirming click or release
func NormalCast() CastMode {
	return CastMode{Castable: true, Normal: true}
}

// PointAndClickCast is a targeted normal cast with no cast-triggered cooldown
func PointAndClickCast() CastMode {
	return CastMode{Castable: true, Normal: true, PointAndClick: true}
}

// NotCastable is used for passives and abilities the engine should ignore
func NotCastable() CastMode {
	return CastMode{}
}

// WithRecast returns a copy of m carrying the recast policy
func (m CastMode) WithRecast(p RecastPolicy) CastMode {
	m.Recast = &p
	return m
}

// Validate checks the invariants of a cast mode
func (m CastMode) Validate() error {
	if !m.Castable {
		if m.Recast != nil {
			return fmt.Errorf("non-castable ability cannot have a recast policy")
		}
		return nil
	}
	if m.Instant == m.Normal {
		return fmt.Errorf("castable ability must be exactly one of instant or normal")
	}
	if m.PointAndClick && !m.Normal {
		return fmt.Errorf("point and click ability must be normal cast")
	}
	if m.Recast == nil {
		return nil
	}
	if !m.Recast.Instant && !m.Recast.Normal && !m.Recast.OnKeyUp {
		return fmt.Errorf("recast policy needs a trigger")
	}
	if m.Recast.Instant && m.Recast.Normal {
		return fmt.Errorf("recast cannot be both instant and normal")
	}
	if m.Recast.MaxRecasts <= 0 {
		return fmt.Errorf("recast policy needs max recasts > 0, got %d", m.Recast.MaxRecasts)
	}
	if m.Recast.Window <= 0 {
		return fmt.Errorf("recast policy needs a positive window, got %s", m.Recast.Window)
	}
	return nil
}

// Registry holds the cast modes of one champion, indexed by AbilityKey
type Registry struct {
	modes [NumKeys]CastMode
}

// NewRegistry builds a registry from the given modes; keys not present are not castable
func NewRegistry(modes map[AbilityKey]CastMode) (*Registry, error) {
	r := &Registry{}
	for key, mode := range modes {
		if !key.Valid() {
			return nil, fmt.Errorf("invalid ability key %s", key)
		}
		if key == Passive && mode.Castable {
			return nil, fmt.Errorf("passive cannot be castable")
		}
		if err := mode.Validate(); err != nil {
			return nil, fmt.Errorf("ability %s: %w", key, err)
		}
		if mode.Recast != nil {
			policy := *mode.Recast
			mode.Recast = &policy
		}
		r.modes[key] = mode
	}
	return r, nil
}

// Mode returns the cast mode of key. None and unknown keys are never castable.
func (r *Registry) Mode(key AbilityKey) CastMode {
	if r == nil || !key.Valid() {
		return CastMode{}
	}
	return r.modes[key]
}
