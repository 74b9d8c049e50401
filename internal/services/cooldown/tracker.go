package cooldown

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal"
	"github.com/KirkDiggler/lol-cast-engine/internal/clock"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// DefaultEarlyRelease clears a tracked cooldown slightly before the game does,
// covering the delay of the live game state feed.
const DefaultEarlyRelease = 350 * time.Millisecond

// Listener is told when cooldowns start and end
type Listener interface {
	CooldownStarted(key champion.AbilityKey, d time.Duration)
	CooldownEnded(key champion.AbilityKey)
}

// TrackerConfig holds the dependencies of a Tracker
type TrackerConfig struct {
	Scheduler clock.Scheduler
	CastModes *champion.Registry
	Costs     *champion.CostTable
	State     champion.StateSource

	// EarlyRelease defaults to DefaultEarlyRelease; use a negative value to disable it
	EarlyRelease time.Duration

	Listener Listener
	Logger   *zap.Logger
}

type slot struct {
	state champion.CooldownState
	gen   uint64
	timer clock.Timer
}

// Tracker owns cooldown flags and recast counters of one champion.
//
// Every scheduled expiry carries the generation of its slot at scheduling
// time; arming a new timer or cancelling bumps the generation, so an expiry
// from an older cycle is dropped. Tracker does no locking: callers serialize
// method calls and scheduler callbacks.
type Tracker struct {
	scheduler    clock.Scheduler
	castModes    *champion.Registry
	costs        *champion.CostTable
	state        champion.StateSource
	earlyRelease time.Duration
	listener     Listener
	logger       *zap.Logger

	slots [champion.NumKeys]slot
}

func NewTracker(cfg *TrackerConfig) (*Tracker, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Scheduler == nil {
		return nil, internal.NewMissingParamError("cfg.Scheduler")
	}
	if cfg.CastModes == nil {
		return nil, internal.NewMissingParamError("cfg.CastModes")
	}
	if cfg.Costs == nil {
		return nil, internal.NewMissingParamError("cfg.Costs")
	}
	if cfg.State == nil {
		return nil, internal.NewMissingParamError("cfg.State")
	}

	earlyRelease := cfg.EarlyRelease
	switch {
	case earlyRelease == 0:
		earlyRelease = DefaultEarlyRelease
	case earlyRelease < 0:
		earlyRelease = 0
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tracker{
		scheduler:    cfg.Scheduler,
		castModes:    cfg.CastModes,
		costs:        cfg.Costs,
		state:        cfg.State,
		earlyRelease: earlyRelease,
		listener:     cfg.Listener,
		logger:       logger,
	}, nil
}

// State returns the tracked state of key
func (t *Tracker) State(key champion.AbilityKey) champion.CooldownState {
	if !key.Valid() {
		return champion.CooldownState{}
	}
	return t.slots[key].state
}

// Snapshot returns the state of every ability
func (t *Tracker) Snapshot() [champion.NumKeys]champion.CooldownState {
	var out [champion.NumKeys]champion.CooldownState
	for _, key := range champion.Keys {
		out[key] = t.slots[key].state
	}
	return out
}

// Generation returns the current timer generation of key
func (t *Tracker) Generation(key champion.AbilityKey) uint64 {
	if !key.Valid() {
		return 0
	}
	return t.slots[key].gen
}

// CooldownFor returns the base cooldown of key at its current level after cooldown reduction
func (t *Tracker) CooldownFor(key champion.AbilityKey) time.Duration {
	gs := t.state.Current()
	base := t.costs.CooldownAt(key, gs.Level(key))

	cdr := gs.CooldownReduction
	if cdr < 0 {
		cdr = 0
	}
	if cdr > 1 {
		cdr = 1
	}
	return time.Duration(float64(base) * (1 - cdr))
}

// StartCooldown puts key on cooldown for override, or for its computed
// cooldown when override is zero. A running cooldown or recast window of
// key is superseded. It returns the full cooldown duration.
func (t *Tracker) StartCooldown(key champion.AbilityKey, override time.Duration) time.Duration {
	if !key.Valid() {
		return 0
	}

	d := override
	if d <= 0 {
		d = t.CooldownFor(key)
	}

	s := &t.slots[key]
	s.state.OnCooldown = true
	s.state.RecastsRemaining = 0

	delay := d - t.earlyRelease
	if delay < 0 {
		delay = 0
	}
	t.arm(key, delay, t.cooldownExpired)

	t.logger.Debug("cooldown started",
		zap.Stringer("key", key),
		zap.Duration("duration", d),
		zap.Duration("release_after", delay),
		zap.Uint64("generation", s.gen))

	if t.listener != nil {
		t.listener.CooldownStarted(key, d)
	}
	return d
}

// StartRecastWindow opens the recast window of key with the policy's max recasts
func (t *Tracker) StartRecastWindow(key champion.AbilityKey) {
	mode := t.castModes.Mode(key)
	if !mode.HasRecast() {
		t.logger.Warn("recast window requested for ability without recast policy", zap.Stringer("key", key))
		return
	}

	s := &t.slots[key]
	s.state.RecastsRemaining = mode.Recast.MaxRecasts
	t.arm(key, mode.Recast.Window, t.recastExpired)

	t.logger.Debug("recast window opened",
		zap.Stringer("key", key),
		zap.Int("recasts", mode.Recast.MaxRecasts),
		zap.Duration("window", mode.Recast.Window),
		zap.Uint64("generation", s.gen))
}

// ConsumeRecast uses one recast of key. ok is false when no recast was available.
func (t *Tracker) ConsumeRecast(key champion.AbilityKey) (remaining int, ok bool) {
	if !key.Valid() {
		return 0, false
	}

	s := &t.slots[key]
	if s.state.RecastsRemaining <= 0 {
		return 0, false
	}
	s.state.RecastsRemaining--
	return s.state.RecastsRemaining, true
}

// CancelRecast closes the recast window of key without starting its cooldown
func (t *Tracker) CancelRecast(key champion.AbilityKey) {
	if !key.Valid() {
		return
	}

	s := &t.slots[key]
	if s.state.RecastsRemaining == 0 {
		return
	}
	s.state.RecastsRemaining = 0
	t.disarm(s)

	t.logger.Debug("recast cancelled", zap.Stringer("key", key))
}

// Reset stops every timer and clears all state
func (t *Tracker) Reset() {
	for _, key := range champion.Keys {
		s := &t.slots[key]
		t.disarm(s)
		s.state = champion.CooldownState{}
	}
}

func (t *Tracker) arm(key champion.AbilityKey, d time.Duration, onExpire func(champion.AbilityKey)) {
	s := &t.slots[key]
	t.disarm(s)

	gen := s.gen
	s.timer = t.scheduler.AfterFunc(d, func() {
		t.expire(key, gen, onExpire)
	})
}

func (t *Tracker) disarm(s *slot) {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (t *Tracker) expire(key champion.AbilityKey, gen uint64, onExpire func(champion.AbilityKey)) {
	s := &t.slots[key]
	if s.gen != gen {
		t.logger.Debug("stale timer ignored",
			zap.Stringer("key", key),
			zap.Uint64("generation", gen),
			zap.Uint64("current", s.gen))
		return
	}
	s.timer = nil
	onExpire(key)
}

func (t *Tracker) cooldownExpired(key champion.AbilityKey) {
	t.slots[key].state.OnCooldown = false

	t.logger.Debug("cooldown ended", zap.Stringer("key", key))
	if t.listener != nil {
		t.listener.CooldownEnded(key)
	}
}

func (t *Tracker) recastExpired(key champion.AbilityKey) {
	s := &t.slots[key]
	if s.state.RecastsRemaining <= 0 {
		return
	}
	s.state.RecastsRemaining = 0

	t.logger.Debug("recast window expired unused", zap.Stringer("key", key))
	t.StartCooldown(key, 0)
}
