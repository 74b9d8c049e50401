package caster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal"
	"github.com/KirkDiggler/lol-cast-engine/internal/clock"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/cooldown"
	"github.com/KirkDiggler/lol-cast-engine/internal/uuid"
)

// Outcome tells the caller what Handle did with an input event
type Outcome uint8

const (
	// OutcomeHandled means the event went through the decision logic; it
	// may or may not have produced a decision.
	OutcomeHandled Outcome = iota
	// OutcomeDebounced is a repeated key-down of a held key
	OutcomeDebounced
	// OutcomeUnmapped is a key that is not bound to an ability
	OutcomeUnmapped
	// OutcomeIgnored is a key-up of an ability that is not selected
	OutcomeIgnored
	// OutcomeNotReady is input received while no champion is active
	OutcomeNotReady
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeDebounced:
		return "debounced"
	case OutcomeUnmapped:
		return "unmapped"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNotReady:
		return "not_ready"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Status is a point-in-time view of the controller
type Status struct {
	Champion  string
	Active    bool
	Selected  champion.AbilityKey
	Cooldowns [champion.NumKeys]champion.CooldownState
}

// ControllerConfig holds the dependencies of a Controller
type ControllerConfig struct {
	Bus   *events.Bus
	State champion.StateSource

	// Scheduler defaults to real timers
	Scheduler  clock.Scheduler
	Preference champion.CastPreference
	// KeyMap defaults to QWER
	KeyMap       input.KeyMap
	EarlyRelease time.Duration

	UUIDGenerator uuid.Generator
	Now           func() time.Time
	Logger        *zap.Logger
}

// Controller turns raw input into cast and recast decisions for one champion.
//
// Every input event and every timer expiry runs under mu, so a decision
// and the state changes it causes are atomic with respect to each other.
// Events produced while mu is held move to an outbox in the same order and
// are published after mu is released, one goroutine at a time, so listeners
// see them in decision order and may call back into the controller. When
// another goroutine is already publishing, Handle may return before its own
// events reach the listeners.
type Controller struct {
	bus          *events.Bus
	state        champion.StateSource
	scheduler    clock.Scheduler
	preference   champion.CastPreference
	keyMap       input.KeyMap
	earlyRelease time.Duration
	ids          uuid.Generator
	now          func() time.Time
	logger       *zap.Logger

	mu       sync.Mutex
	data     *champion.Data
	tracker  *cooldown.Tracker
	selected champion.AbilityKey
	held     [champion.NumKeys]bool
	oomSent  bool
	pending  []events.Event

	outMu    sync.Mutex
	outbox   []events.Event
	draining bool
}

func NewController(cfg *ControllerConfig) *Controller {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Bus == nil {
		panic("bus is required")
	}
	if cfg.State == nil {
		panic("state source is required")
	}

	c := &Controller{
		bus:          cfg.Bus,
		state:        cfg.State,
		scheduler:    cfg.Scheduler,
		preference:   cfg.Preference,
		keyMap:       cfg.KeyMap,
		earlyRelease: cfg.EarlyRelease,
		ids:          cfg.UUIDGenerator,
		now:          cfg.Now,
		logger:       cfg.Logger,
	}
	if c.scheduler == nil {
		c.scheduler = clock.NewRealScheduler()
	}
	if c.keyMap == nil {
		c.keyMap = input.DefaultKeyMap()
	}
	if c.ids == nil {
		c.ids = uuid.NewGoogleUUIDGenerator()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Activate loads champion data and starts accepting input. Activating
// while already active replaces the previous champion and cancels its timers.
func (c *Controller) Activate(data *champion.Data) error {
	if data == nil {
		return internal.NewMissingParamError("data")
	}
	if data.CastModes == nil {
		return internal.NewMissingParamError("data.CastModes")
	}
	if err := data.Costs.Validate(); err != nil {
		return internal.NewInvalidParamError(fmt.Sprintf("champion %s: %v", data.Name, err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()

	tracker, err := cooldown.NewTracker(&cooldown.TrackerConfig{
		Scheduler:    &serialScheduler{c: c},
		CastModes:    data.CastModes,
		Costs:        data.Costs,
		State:        c.state,
		EarlyRelease: c.earlyRelease,
		Listener:     c,
		Logger:       c.logger.With(zap.String("champion", data.Name)),
	})
	if err != nil {
		return err
	}

	c.data = data
	c.tracker = tracker

	c.logger.Info("champion activated",
		zap.String("champion", data.Name),
		zap.String("version", data.Version),
		zap.Stringer("preference", c.preference))
	return nil
}

// Deactivate cancels every pending timer and stops accepting input
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		return
	}
	c.logger.Info("champion deactivated", zap.String("champion", c.data.Name))
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	if c.tracker != nil {
		c.tracker.Reset()
	}
	c.data = nil
	c.tracker = nil
	c.selected = champion.None
	c.held = [champion.NumKeys]bool{}
	c.pending = nil
}

// Active reports whether a champion is loaded
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data != nil
}

// Selected returns the ability awaiting confirmation, or None
func (c *Controller) Selected() champion.AbilityKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{Selected: c.selected}
	if c.data != nil {
		st.Active = true
		st.Champion = c.data.Name
		st.Cooldowns = c.tracker.Snapshot()
	}
	return st
}

// Handle processes one input event
func (c *Controller) Handle(ev input.Event) Outcome {
	c.mu.Lock()
	outcome := c.handleLocked(ev)
	c.flushLocked()
	c.mu.Unlock()

	c.drain()
	return outcome
}

// CancelRecast closes the recast window of key without starting its cooldown
func (c *Controller) CancelRecast(key champion.AbilityKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tracker == nil {
		return
	}
	c.cancelRecastLocked(key)
}

// CancelAllRecasts closes every open recast window, e.g. when the champion dies
func (c *Controller) CancelAllRecasts() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tracker == nil {
		return
	}
	for _, key := range champion.Keys {
		c.cancelRecastLocked(key)
	}
}

func (c *Controller) cancelRecastLocked(key champion.AbilityKey) {
	c.tracker.CancelRecast(key)
	if c.selected == key {
		c.selected = champion.None
	}
}

// Run starts src and handles its events in order until ctx is done or the
// source closes its channel. The source is stopped before Run returns.
func (c *Controller) Run(ctx context.Context, src input.Source) error {
	if src == nil {
		return internal.NewMissingParamError("src")
	}
	if !c.Active() {
		return internal.NewNotReadyError("run before activate")
	}
	if err := src.Start(ctx); err != nil {
		return fmt.Errorf("failed to start input source: %w", err)
	}
	defer func() {
		if err := src.Stop(); err != nil {
			c.logger.Warn("failed to stop input source", zap.Error(err))
		}
	}()

	evs := src.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evs:
			if !ok {
				return nil
			}
			c.Handle(ev)
		}
	}
}

func (c *Controller) handleLocked(ev input.Event) Outcome {
	if c.data == nil {
		c.logger.Debug("input ignored, no champion active", zap.Stringer("event", ev))
		return OutcomeNotReady
	}
	c.oomSent = false

	switch ev.Kind {
	case input.KindMouseDown:
		c.onMouse(ev.Button)
		return OutcomeHandled
	case input.KindKeyDown, input.KindKeyUp:
		key, ok := c.keyMap.Lookup(ev.Char)
		if !ok {
			return OutcomeUnmapped
		}
		return c.onKey(key, ev.Kind == input.KindKeyUp)
	default:
		return OutcomeIgnored
	}
}

func (c *Controller) onMouse(button input.Button) {
	switch button {
	case input.ButtonRight:
		if c.selected == champion.None {
			return
		}
		mode := c.data.CastModes.Mode(c.selected)
		if c.canRecast(c.selected) && !mode.RecastOnKeyUp() {
			c.logger.Debug("selection cancelled", zap.Stringer("key", c.selected))
			c.selected = champion.None
		}
	case input.ButtonLeft:
		key := c.selected
		if key == champion.None || !c.canCast(key) {
			return
		}
		if c.canRecast(key) {
			c.recast(key)
			return
		}
		c.cast(key)
	}
}

func (c *Controller) onKey(key champion.AbilityKey, keyUp bool) Outcome {
	if keyUp {
		c.held[key] = false
	} else {
		if c.held[key] {
			return OutcomeDebounced
		}
		c.held[key] = true
	}

	if keyUp && c.selected != key {
		return OutcomeIgnored
	}

	mode := c.data.CastModes.Mode(key)

	if c.canRecast(key) {
		c.onRecastKey(key, mode.Recast, keyUp)
		return OutcomeHandled
	}

	if mode.Instant {
		if !keyUp && c.canCast(key) {
			c.cast(key)
		}
		return OutcomeHandled
	}

	if !mode.Normal {
		return OutcomeHandled
	}

	switch c.preference {
	case champion.PreferenceQuick:
		if !keyUp && c.canCast(key) {
			c.cast(key)
		}
	case champion.PreferenceQuickWithIndicator:
		if !c.canCast(key) {
			break
		}
		if keyUp {
			// stray releases were dropped above, so key is selected
			c.cast(key)
		} else {
			c.selected = key
		}
	default:
		if !keyUp && c.canCast(key) {
			c.selected = key
		}
	}
	return OutcomeHandled
}

func (c *Controller) onRecastKey(key champion.AbilityKey, policy *champion.RecastPolicy, keyUp bool) {
	if policy.Instant {
		if !keyUp && c.canCast(key) {
			c.recast(key)
		}
		return
	}

	switch c.preference {
	case champion.PreferenceQuick:
		if !keyUp && c.canCast(key) {
			c.recast(key)
		}
	case champion.PreferenceQuickWithIndicator:
		// Both key-up branches are checked on their own; recast refuses
		// once the window is used up.
		if keyUp && policy.OnKeyUp && c.selected == key && c.canCast(key) {
			c.recast(key)
		}
		if !keyUp && policy.Normal && c.canCast(key) {
			c.selected = key
		}
		if keyUp && policy.Normal && c.selected == key && c.canCast(key) {
			c.recast(key)
		}
	default:
		if !keyUp && policy.Normal && c.canCast(key) {
			c.selected = key
		}
		// Key-up recast abilities fire on release here, the way they are
		// charged in game (hold to charge, release to fire). Under Quick they
		// fire on the next press instead.
		if keyUp && policy.OnKeyUp && c.canCast(key) {
			c.recast(key)
		}
	}
}

func (c *Controller) canCast(key champion.AbilityKey) bool {
	verdict := champion.CanCast(key,
		c.data.CastModes.Mode(key),
		c.state.Current(),
		c.data.Costs,
		c.tracker.State(key))

	if verdict.OutOfMana() && !c.oomSent {
		c.oomSent = true
		c.enqueue(events.NewOutOfMana(c.ids.New(), c.data.Name, key, c.now()))
	}
	if !verdict.Allowed {
		c.logger.Debug("cast denied", zap.Stringer("key", key), zap.Stringer("reason", verdict.Reason))
	}
	return verdict.Allowed
}

func (c *Controller) canRecast(key champion.AbilityKey) bool {
	return champion.CanRecast(c.data.CastModes.Mode(key), c.tracker.State(key))
}

func (c *Controller) cast(key champion.AbilityKey) {
	mode := c.data.CastModes.Mode(key)

	c.logger.Debug("ability cast", zap.Stringer("key", key))
	c.enqueue(events.NewAbilityCast(c.ids.New(), c.data.Name, key, c.now()))

	switch {
	case mode.HasRecast():
		c.tracker.StartRecastWindow(key)
	case !mode.PointAndClick:
		c.tracker.StartCooldown(key, 0)
	}

	if mode.RecastOnKeyUp() {
		c.selected = key
	} else {
		c.selected = champion.None
	}
}

func (c *Controller) recast(key champion.AbilityKey) {
	remaining, ok := c.tracker.ConsumeRecast(key)
	if !ok {
		return
	}

	c.logger.Debug("ability recast", zap.Stringer("key", key), zap.Int("remaining", remaining))
	c.enqueue(events.NewAbilityRecast(c.ids.New(), c.data.Name, key, remaining, c.now()))

	if remaining > 0 {
		return
	}
	if c.data.CastModes.Mode(key).RecastOnKeyUp() {
		c.selected = champion.None
	}
	c.tracker.StartCooldown(key, 0)
}

// CooldownStarted implements cooldown.Listener; it runs under mu
func (c *Controller) CooldownStarted(key champion.AbilityKey, d time.Duration) {
	c.enqueue(events.NewCooldownStarted(c.ids.New(), c.data.Name, key, d, c.now()))
}

// CooldownEnded implements cooldown.Listener; it runs under mu
func (c *Controller) CooldownEnded(key champion.AbilityKey) {
	c.enqueue(events.NewCooldownEnded(c.ids.New(), c.data.Name, key, c.now()))
}

func (c *Controller) enqueue(e events.Event) {
	c.pending = append(c.pending, e)
}

// flushLocked moves pending events to the outbox while mu still orders them
func (c *Controller) flushLocked() {
	if len(c.pending) == 0 {
		return
	}
	c.outMu.Lock()
	c.outbox = append(c.outbox, c.pending...)
	c.outMu.Unlock()
	c.pending = nil
}

// drain publishes the outbox unless another goroutine already is; that
// goroutine picks up whatever was flushed before it finds the outbox empty.
func (c *Controller) drain() {
	c.outMu.Lock()
	if c.draining {
		c.outMu.Unlock()
		return
	}
	c.draining = true
	for len(c.outbox) > 0 {
		batch := c.outbox
		c.outbox = nil
		c.outMu.Unlock()

		c.publish(batch)

		c.outMu.Lock()
	}
	c.draining = false
	c.outMu.Unlock()
}

func (c *Controller) publish(out []events.Event) {
	for _, e := range out {
		if err := c.bus.Emit(e); err != nil {
			c.logger.Warn("failed to publish event",
				zap.String("event", string(e.GetType())),
				zap.Stringer("key", e.GetKey()),
				zap.Error(err))
		}
	}
}

// serialScheduler runs timer callbacks under the controller lock and
// publishes what they produced behind any events already flushed.
type serialScheduler struct {
	c *Controller
}

func (s *serialScheduler) AfterFunc(d time.Duration, fn func()) clock.Timer {
	return s.c.scheduler.AfterFunc(d, func() {
		s.c.mu.Lock()
		fn()
		s.c.flushLocked()
		s.c.mu.Unlock()

		s.c.drain()
	})
}
