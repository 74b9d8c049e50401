package champion

// Reason explains a gate decision
type Reason uint8

const (
	ReasonAllowed Reason = iota
	ReasonDead
	ReasonNotCastable
	ReasonNotLearned
	ReasonOnCooldown
	ReasonInsufficientResource
)

func (r Reason) String() string {
	switch r {
	case ReasonAllowed:
		return "allowed"
	case ReasonDead:
		return "dead"
	case ReasonNotCastable:
		return "not_castable"
	case ReasonNotLearned:
		return "not_learned"
	case ReasonOnCooldown:
		return "on_cooldown"
	case ReasonInsufficientResource:
		return "insufficient_resource"
	default:
		return "unknown"
	}
}

// Verdict is the result of a gate check
type Verdict struct {
	Allowed bool
	Reason  Reason
}

// OutOfMana reports whether the check failed only because of missing resource
func (v Verdict) OutOfMana() bool {
	return v.Reason == ReasonInsufficientResource
}

func deny(reason Reason) Verdict {
	return Verdict{Reason: reason}
}

// CanCast decides whether key may be cast right now. Checks run in a fixed
// order and stop at the first failure.
func CanCast(key AbilityKey, mode CastMode, state GameState, costs *CostTable, cd CooldownState) Verdict {
	if state.IsDead {
		return deny(ReasonDead)
	}
	if !mode.Castable {
		return deny(ReasonNotCastable)
	}
	level := state.Level(key)
	if level == 0 {
		return deny(ReasonNotLearned)
	}
	if cd.OnCooldown {
		return deny(ReasonOnCooldown)
	}
	if state.ResourceValue < float64(costs.ManaCostAt(key, level)) {
		return deny(ReasonInsufficientResource)
	}
	return Verdict{Allowed: true, Reason: ReasonAllowed}
}

// CanRecast reports whether key has an open recast window
func CanRecast(mode CastMode, cd CooldownState) bool {
	return mode.HasRecast() && cd.RecastsRemaining > 0
}
