package liveclient

import (
	"math"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

type allGameData struct {
	ActivePlayer activePlayer `json:"activePlayer"`
	AllPlayers   []player     `json:"allPlayers"`
}

type activePlayer struct {
	SummonerName  string             `json:"summonerName"`
	RiotID        string             `json:"riotId"`
	Abilities     map[string]ability `json:"abilities"`
	ChampionStats championStats      `json:"championStats"`
}

type ability struct {
	AbilityLevel int `json:"abilityLevel"`
}

type championStats struct {
	AbilityHaste      float64 `json:"abilityHaste"`
	CooldownReduction float64 `json:"cooldownReduction"`
	ResourceValue     float64 `json:"resourceValue"`
}

type player struct {
	SummonerName string `json:"summonerName"`
	RiotID       string `json:"riotId"`
	ChampionName string `json:"championName"`
	IsDead       bool   `json:"isDead"`
}

func (d allGameData) snapshot() *Snapshot {
	me := d.ActivePlayer
	snap := &Snapshot{PlayerName: me.name()}

	for _, key := range champion.Keys {
		snap.State.AbilityLevels[key] = me.Abilities[key.String()].AbilityLevel
	}
	snap.State.ResourceValue = me.ChampionStats.ResourceValue
	snap.State.CooldownReduction = me.ChampionStats.reduction()

	for _, p := range d.AllPlayers {
		if p.matches(me) {
			snap.ChampionName = p.ChampionName
			snap.State.IsDead = p.IsDead
			break
		}
	}
	return snap
}

func (p activePlayer) name() string {
	if p.RiotID != "" {
		return p.RiotID
	}
	return p.SummonerName
}

func (p player) matches(me activePlayer) bool {
	if p.RiotID != "" && me.RiotID != "" {
		return p.RiotID == me.RiotID
	}
	return p.SummonerName != "" && p.SummonerName == me.SummonerName
}

// reduction converts ability haste to a cooldown fraction; older game
// versions report a negative cooldownReduction instead
func (s championStats) reduction() float64 {
	if s.AbilityHaste > 0 {
		return s.AbilityHaste / (100 + s.AbilityHaste)
	}
	return math.Min(math.Abs(s.CooldownReduction), 1)
}
