package champion

import (
	"sync"
)

//go:generate mockgen -destination=mock/mock_state_source.go -package=mockchampion -source=state.go

// GameState is a read-only snapshot of the live game used for one decision
type GameState struct {
	IsDead            bool
	AbilityLevels     [NumKeys]int
	ResourceValue     float64
	CooldownReduction float64 // fraction in [0, 1)
}

// Level returns the learned level of key
func (s GameState) Level(key AbilityKey) int {
	if !key.Valid() {
		return 0
	}
	return s.AbilityLevels[key]
}

// StateSource is pulled at decision time for the current game state
type StateSource interface {
	Current() GameState
}

// StateHolder is a StateSource that is pushed to by a poller
type StateHolder struct {
	mu    sync.RWMutex
	state GameState
}

func NewStateHolder(initial GameState) *StateHolder {
	return &StateHolder{state: initial}
}

func (h *StateHolder) Current() GameState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Set replaces the snapshot and returns the previous one
func (h *StateHolder) Set(state GameState) GameState {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.state
	h.state = state
	return prev
}

// CooldownState is the tracked availability of one ability
type CooldownState struct {
	OnCooldown       bool
	RecastsRemaining int
}

// Data is everything loaded once when a champion is activated
type Data struct {
	Name      string
	Version   string
	CastModes *Registry
	Costs     *CostTable
}
