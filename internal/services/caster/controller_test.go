package caster_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lol-cast-engine/internal"
	clockmock "github.com/KirkDiggler/lol-cast-engine/internal/clock/mock"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/caster"
	"github.com/KirkDiggler/lol-cast-engine/internal/testutils"
	"github.com/KirkDiggler/lol-cast-engine/internal/uuid"
)

// test champion cooldowns are 10s and the tracker releases 350ms early
const released = 10*time.Second - 350*time.Millisecond

type ControllerTestSuite struct {
	suite.Suite
	bus        *events.Bus
	recorder   *events.Recorder
	state      *champion.StateHolder
	scheduler  *clockmock.ManualScheduler
	controller *caster.Controller
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.bus = events.NewBus(nil)
	s.recorder = events.NewRecorder("recorder", events.PriorityDisplay)
	s.bus.SubscribeAll(s.recorder)
	s.state = champion.NewStateHolder(testutils.CreateTestGameState(1, 500))
	s.scheduler = clockmock.NewManualScheduler()
}

func (s *ControllerTestSuite) activate(pref champion.CastPreference, modes map[champion.AbilityKey]champion.CastMode) {
	s.controller = caster.NewController(&caster.ControllerConfig{
		Bus:           s.bus,
		State:         s.state,
		Scheduler:     s.scheduler,
		Preference:    pref,
		UUIDGenerator: uuid.NewSequenceGenerator("evt"),
	})
	s.Require().NoError(s.controller.Activate(testutils.CreateTestChampion("Testchamp", modes)))
}

func (s *ControllerTestSuite) press(r rune) caster.Outcome {
	return s.controller.Handle(input.KeyDown(r))
}

func (s *ControllerTestSuite) release(r rune) caster.Outcome {
	return s.controller.Handle(input.KeyUp(r))
}

func (s *ControllerTestSuite) tap(r rune) {
	s.press(r)
	s.release(r)
}

func (s *ControllerTestSuite) click(b input.Button) {
	s.controller.Handle(input.MouseDown(b))
}

func (s *ControllerTestSuite) count(t events.EventType) int {
	return len(s.recorder.OfType(t))
}

func (s *ControllerTestSuite) cooldown(key champion.AbilityKey) champion.CooldownState {
	return s.controller.Status().Cooldowns[key]
}

func recastOnKeyUp(max int) champion.RecastPolicy {
	return champion.RecastPolicy{OnKeyUp: true, MaxRecasts: max, Window: 5 * time.Second}
}

func (s *ControllerTestSuite) TestInstantCastOnKeyDown() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})

	s.Equal(caster.OutcomeHandled, s.press('q'))

	casts := s.recorder.OfType(events.EventTypeAbilityCast)
	s.Require().Len(casts, 1)
	s.Equal(champion.Q, casts[0].GetKey())
	s.Equal("Testchamp", casts[0].GetChampion())
	s.True(s.cooldown(champion.Q).OnCooldown)
	s.Equal(1, s.count(events.EventTypeCooldownStarted))

	s.release('q')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(champion.None, s.controller.Selected())
}

func (s *ControllerTestSuite) TestKeyUpNeverCastsInstantAbility() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})

	s.Equal(caster.OutcomeIgnored, s.release('q'))
	s.Empty(s.recorder.Events())
	s.Equal(champion.None, s.controller.Selected())
}

func (s *ControllerTestSuite) TestHeldKeyIsDebounced() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast(),
	})

	s.Equal(caster.OutcomeHandled, s.press('w'))
	s.Equal(caster.OutcomeDebounced, s.press('w'))
	s.Equal(caster.OutcomeDebounced, s.press('W'))
	s.release('w')
	s.Equal(caster.OutcomeHandled, s.press('w'))
}

func (s *ControllerTestSuite) TestNormalCastNeedsClick() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast(),
	})

	s.click(input.ButtonLeft)
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast), "click without selection")

	s.press('w')
	s.Equal(champion.W, s.controller.Selected())
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast))

	s.release('w')
	s.Equal(champion.W, s.controller.Selected(), "release keeps selection under normal cast")

	s.click(input.ButtonLeft)
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(champion.None, s.controller.Selected())

	s.click(input.ButtonLeft)
	s.Equal(1, s.count(events.EventTypeAbilityCast))
}

func (s *ControllerTestSuite) TestClickRechecksGate() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast(),
	})

	s.press('w')
	dead := s.state.Current()
	dead.IsDead = true
	s.state.Set(dead)

	s.click(input.ButtonLeft)
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast))
	s.Equal(champion.W, s.controller.Selected())
}

func (s *ControllerTestSuite) TestQuickCastsNormalAbilityOnKeyDown() {
	s.activate(champion.PreferenceQuick, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast(),
	})

	s.press('w')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(champion.None, s.controller.Selected())
	s.release('w')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
}

func (s *ControllerTestSuite) TestQuickWithIndicatorCastsOnRelease() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.E: champion.NormalCast(),
	})

	s.press('e')
	s.Equal(champion.E, s.controller.Selected())
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast))

	s.release('e')
	casts := s.recorder.OfType(events.EventTypeAbilityCast)
	s.Require().Len(casts, 1)
	s.Equal(champion.E, casts[0].GetKey())
	s.Equal(champion.None, s.controller.Selected())
}

func (s *ControllerTestSuite) TestStrayReleaseIsIgnored() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.NormalCast(),
		champion.W: champion.NormalCast(),
	})

	s.press('w')
	s.press('q')
	s.Equal(champion.Q, s.controller.Selected())

	s.Equal(caster.OutcomeIgnored, s.release('w'))
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast))
	s.Equal(champion.Q, s.controller.Selected())

	s.release('q')
	casts := s.recorder.OfType(events.EventTypeAbilityCast)
	s.Require().Len(casts, 1)
	s.Equal(champion.Q, casts[0].GetKey())
}

func (s *ControllerTestSuite) TestCooldownBlocksUntilExpiry() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})

	s.tap('q')
	s.Equal(1, s.count(events.EventTypeAbilityCast))

	s.scheduler.Advance(released - time.Millisecond)
	s.True(s.cooldown(champion.Q).OnCooldown)
	s.tap('q')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Zero(s.count(events.EventTypeCooldownEnded))

	s.scheduler.Advance(time.Millisecond)
	s.False(s.cooldown(champion.Q).OnCooldown)
	s.Equal(1, s.count(events.EventTypeCooldownEnded))

	s.scheduler.Advance(time.Minute)
	s.Equal(1, s.count(events.EventTypeCooldownEnded), "expiry fires once")

	s.tap('q')
	s.Equal(2, s.count(events.EventTypeAbilityCast))
}

func (s *ControllerTestSuite) TestCooldownUsesReduction() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})
	st := s.state.Current()
	st.CooldownReduction = 0.5
	s.state.Set(st)

	s.press('q')

	started := s.recorder.OfType(events.EventTypeCooldownStarted)
	s.Require().Len(started, 1)
	s.Equal(5*time.Second, started[0].(*events.CooldownStartedEvent).Duration)

	s.scheduler.Advance(5*time.Second - 350*time.Millisecond)
	s.False(s.cooldown(champion.Q).OnCooldown)
}

func (s *ControllerTestSuite) TestPointAndClickStartsNoCooldown() {
	s.activate(champion.PreferenceQuick, map[champion.AbilityKey]champion.CastMode{
		champion.E: champion.PointAndClickCast(),
	})

	s.press('e')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.False(s.cooldown(champion.E).OnCooldown)
	s.Zero(s.scheduler.Pending())
}

func (s *ControllerTestSuite) TestOutOfManaOncePerAttempt() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})
	s.state.Set(testutils.CreateTestGameState(1, 10))

	s.press('q')
	s.Equal(1, s.count(events.EventTypeOutOfMana))
	s.Empty(s.recorder.OfType(events.EventTypeAbilityCast))

	s.press('q')
	s.Equal(1, s.count(events.EventTypeOutOfMana), "held key is not a new attempt")

	s.release('q')
	s.press('q')
	s.Equal(2, s.count(events.EventTypeOutOfMana))
}

func (s *ControllerTestSuite) TestNoOutOfManaForOtherFailures() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})
	st := testutils.CreateTestGameState(0, 0)
	s.state.Set(st)

	s.tap('q')
	st.IsDead = true
	st.AbilityLevels[champion.Q] = 1
	s.state.Set(st)
	s.tap('q')

	s.Empty(s.recorder.Events())
}

func (s *ControllerTestSuite) TestRecastsOnKeyDownThenCooldown() {
	s.activate(champion.PreferenceQuick, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.InstantCast().WithRecast(recastOnKeyUp(2)),
	})

	s.tap('r')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(2, s.cooldown(champion.R).RecastsRemaining)
	s.False(s.cooldown(champion.R).OnCooldown)

	s.tap('r')
	s.Equal(1, s.cooldown(champion.R).RecastsRemaining)
	s.tap('r')

	recasts := s.recorder.OfType(events.EventTypeAbilityRecast)
	s.Require().Len(recasts, 2)
	s.Equal(1, recasts[0].(*events.AbilityRecastEvent).RecastsRemaining)
	s.Equal(0, recasts[1].(*events.AbilityRecastEvent).RecastsRemaining)

	s.Zero(s.cooldown(champion.R).RecastsRemaining)
	s.True(s.cooldown(champion.R).OnCooldown)
	s.Equal(1, s.count(events.EventTypeCooldownStarted))
	s.Equal(champion.None, s.controller.Selected())

	// the recast window timer was superseded by the cooldown
	s.scheduler.Advance(5 * time.Second)
	s.Equal(1, s.count(events.EventTypeCooldownStarted))
	s.True(s.cooldown(champion.R).OnCooldown)
}

func (s *ControllerTestSuite) TestNormalPreferenceRecastsOnRelease() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast().WithRecast(recastOnKeyUp(1)),
	})

	s.press('q')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(champion.Q, s.controller.Selected())

	s.release('q')
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.Equal(champion.None, s.controller.Selected())
	s.True(s.cooldown(champion.Q).OnCooldown)
}

// Key-down only casts; each release fires one recast.
func (s *ControllerTestSuite) TestNormalPreferenceKeyDownDoesNotRecast() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast().WithRecast(recastOnKeyUp(2)),
	})

	s.press('q')
	s.release('q')
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.Equal(1, s.cooldown(champion.Q).RecastsRemaining)

	s.Equal(caster.OutcomeHandled, s.press('q'))
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.Equal(1, s.cooldown(champion.Q).RecastsRemaining)

	s.release('q')
	s.Equal(2, s.count(events.EventTypeAbilityRecast))
	s.True(s.cooldown(champion.Q).OnCooldown)
}

func (s *ControllerTestSuite) TestInstantRecast() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.InstantCast().WithRecast(champion.RecastPolicy{
			Instant:    true,
			MaxRecasts: 3,
			Window:     10 * time.Second,
		}),
	})

	s.tap('r')
	s.tap('r')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.Equal(2, s.cooldown(champion.R).RecastsRemaining)
	s.Equal(champion.None, s.controller.Selected())
}

func (s *ControllerTestSuite) TestUnusedWindowExpiresIntoCooldown() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.InstantCast().WithRecast(champion.RecastPolicy{
			Instant:    true,
			MaxRecasts: 3,
			Window:     3 * time.Second,
		}),
	})

	s.tap('r')
	s.scheduler.Advance(3 * time.Second)

	s.Zero(s.cooldown(champion.R).RecastsRemaining)
	s.True(s.cooldown(champion.R).OnCooldown)
	s.Equal(1, s.count(events.EventTypeCooldownStarted))

	s.tap('r')
	s.Empty(s.recorder.OfType(events.EventTypeAbilityRecast))
	s.Equal(1, s.count(events.EventTypeAbilityCast))

	s.scheduler.Advance(released)
	s.False(s.cooldown(champion.R).OnCooldown)
}

func (s *ControllerTestSuite) TestRightClickCancelsRecastSelection() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			MaxRecasts: 1,
			Window:     5 * time.Second,
		}),
	})

	s.press('w')
	s.click(input.ButtonLeft)
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(1, s.cooldown(champion.W).RecastsRemaining)
	s.Equal(champion.None, s.controller.Selected())
	s.Equal(caster.OutcomeIgnored, s.release('w'))

	s.press('w')
	s.Equal(champion.W, s.controller.Selected())
	s.click(input.ButtonRight)
	s.Equal(champion.None, s.controller.Selected())
	s.click(input.ButtonLeft)
	s.Empty(s.recorder.OfType(events.EventTypeAbilityRecast))

	s.release('w')
	s.press('w')
	s.click(input.ButtonLeft)
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.True(s.cooldown(champion.W).OnCooldown)
}

func (s *ControllerTestSuite) TestRightClickKeepsKeyUpRecastSelection() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast().WithRecast(recastOnKeyUp(1)),
	})

	s.press('q')
	s.click(input.ButtonRight)
	s.Equal(champion.Q, s.controller.Selected())
}

func (s *ControllerTestSuite) TestRightClickWithoutRecastKeepsSelection() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.W: champion.NormalCast(),
	})

	s.press('w')
	s.click(input.ButtonRight)
	s.Equal(champion.W, s.controller.Selected())
}

func (s *ControllerTestSuite) TestQuickWithIndicatorBothReleaseBranches() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			OnKeyUp:    true,
			MaxRecasts: 2,
			Window:     5 * time.Second,
		}),
	})

	s.tap('r')
	s.Equal(1, s.count(events.EventTypeAbilityCast))
	s.Equal(champion.R, s.controller.Selected())
	s.Equal(2, s.cooldown(champion.R).RecastsRemaining)

	s.press('r')
	s.release('r')
	s.Equal(2, s.count(events.EventTypeAbilityRecast))
	s.True(s.cooldown(champion.R).OnCooldown)
	s.Equal(1, s.count(events.EventTypeCooldownStarted))
	s.Equal(champion.None, s.controller.Selected())
}

func (s *ControllerTestSuite) TestQuickWithIndicatorSecondBranchNeedsSelection() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			OnKeyUp:    true,
			MaxRecasts: 1,
			Window:     5 * time.Second,
		}),
	})

	s.tap('r')
	s.press('r')
	s.release('r')
	s.Equal(1, s.count(events.EventTypeAbilityRecast))
	s.Zero(s.cooldown(champion.R).RecastsRemaining)
}

func (s *ControllerTestSuite) TestOutOfManaOncePerEventAcrossBranches() {
	s.activate(champion.PreferenceQuickWithIndicator, map[champion.AbilityKey]champion.CastMode{
		champion.R: champion.NormalCast().WithRecast(champion.RecastPolicy{
			Normal:     true,
			OnKeyUp:    true,
			MaxRecasts: 2,
			Window:     5 * time.Second,
		}),
	})

	s.tap('r')
	s.state.Set(testutils.CreateTestGameState(1, 0))

	s.press('r')
	s.Equal(1, s.count(events.EventTypeOutOfMana))
	s.release('r')
	s.Equal(2, s.count(events.EventTypeOutOfMana))
	s.Empty(s.recorder.OfType(events.EventTypeAbilityRecast))
}

func (s *ControllerTestSuite) TestCancelAllRecasts() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast().WithRecast(recastOnKeyUp(2)),
	})

	s.press('q')
	s.Equal(champion.Q, s.controller.Selected())

	s.controller.CancelAllRecasts()
	s.Zero(s.cooldown(champion.Q).RecastsRemaining)
	s.False(s.cooldown(champion.Q).OnCooldown)
	s.Equal(champion.None, s.controller.Selected())

	s.scheduler.Advance(time.Minute)
	s.Empty(s.recorder.OfType(events.EventTypeCooldownStarted))
}

func (s *ControllerTestSuite) TestUnmappedAndPassive() {
	s.controller = caster.NewController(&caster.ControllerConfig{
		Bus:       s.bus,
		State:     s.state,
		Scheduler: s.scheduler,
		KeyMap:    input.KeyMap{'q': champion.Q, 'p': champion.Passive},
	})
	s.Require().NoError(s.controller.Activate(testutils.CreateTestChampion("Testchamp", map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})))

	s.Equal(caster.OutcomeUnmapped, s.press('x'))
	s.Equal(caster.OutcomeUnmapped, s.press('w'))
	s.Equal(caster.OutcomeHandled, s.press('p'))
	s.Empty(s.recorder.Events())
}

func (s *ControllerTestSuite) TestNotReadyBeforeActivation() {
	s.controller = caster.NewController(&caster.ControllerConfig{
		Bus:       s.bus,
		State:     s.state,
		Scheduler: s.scheduler,
	})

	s.False(s.controller.Active())
	s.Equal(caster.OutcomeNotReady, s.press('q'))
	s.Equal(caster.OutcomeNotReady, s.controller.Handle(input.MouseDown(input.ButtonLeft)))
	s.Empty(s.recorder.Events())
	s.False(s.controller.Status().Active)
}

func (s *ControllerTestSuite) TestDeactivateCancelsTimers() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})

	s.press('q')
	s.Equal(1, s.scheduler.Pending())

	s.controller.Deactivate()
	s.Zero(s.scheduler.Pending())
	s.scheduler.Advance(time.Minute)
	s.Empty(s.recorder.OfType(events.EventTypeCooldownEnded))

	s.Equal(caster.OutcomeNotReady, s.press('q'))
	s.Equal(1, s.count(events.EventTypeAbilityCast))
}

func (s *ControllerTestSuite) TestReactivateStartsClean() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})
	s.press('q')
	s.Require().NoError(s.controller.Activate(testutils.CreateTestChampion("Other", map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})))

	st := s.controller.Status()
	s.Equal("Other", st.Champion)
	s.False(st.Cooldowns[champion.Q].OnCooldown)

	// q was held before reactivation and is not debounced now
	s.Equal(caster.OutcomeHandled, s.press('q'))
	s.Equal(2, s.count(events.EventTypeAbilityCast))
}

func (s *ControllerTestSuite) TestActivateValidation() {
	s.controller = caster.NewController(&caster.ControllerConfig{Bus: s.bus, State: s.state})

	err := s.controller.Activate(nil)
	s.True(errors.Is(err, internal.ErrMissingParam))

	data := testutils.CreateTestChampion("Broken", nil)
	data.Costs.Cooldown[champion.E] = nil
	err = s.controller.Activate(data)
	s.True(errors.Is(err, internal.ErrInvalidParam))
	s.False(s.controller.Active())
}

func (s *ControllerTestSuite) TestEventIDsAreSequential() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})

	s.press('q')
	evs := s.recorder.Events()
	s.Require().Len(evs, 2)
	s.Equal("evt-1", evs[0].GetID())
	s.Equal(events.EventTypeAbilityCast, evs[0].GetType())
	s.Equal("evt-2", evs[1].GetID())
	s.Equal(events.EventTypeCooldownStarted, evs[1].GetType())
}

type statusProbe struct {
	controller *caster.Controller
	seen       []caster.Status
}

func (p *statusProbe) ID() string    { return "probe" }
func (p *statusProbe) Priority() int { return events.PriorityNotification }
func (p *statusProbe) HandleEvent(events.Event) error {
	p.seen = append(p.seen, p.controller.Status())
	return nil
}

func (s *ControllerTestSuite) TestListenersMayQueryController() {
	s.activate(champion.PreferenceNormal, map[champion.AbilityKey]champion.CastMode{
		champion.Q: champion.InstantCast(),
	})
	probe := &statusProbe{controller: s.controller}
	s.bus.Subscribe(events.EventTypeAbilityCast, probe)
	s.bus.Subscribe(events.EventTypeCooldownEnded, probe)

	s.press('q')
	s.scheduler.Advance(released)

	s.Require().Len(probe.seen, 2)
	s.True(probe.seen[0].Cooldowns[champion.Q].OnCooldown)
	s.False(probe.seen[1].Cooldowns[champion.Q].OnCooldown)
}

func TestNewController_PanicsWithoutDependencies(t *testing.T) {
	suite.Run(t, new(constructorSuite))
}

type constructorSuite struct {
	suite.Suite
}

func (s *constructorSuite) TestMissingBus() {
	s.Panics(func() {
		caster.NewController(&caster.ControllerConfig{State: champion.NewStateHolder(champion.GameState{})})
	})
}

func (s *constructorSuite) TestMissingState() {
	s.Panics(func() {
		caster.NewController(&caster.ControllerConfig{Bus: events.NewBus(nil)})
	})
}
