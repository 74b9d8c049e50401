package liveclient

//go:generate mockgen -destination=mock/mock_client.go -package=mockliveclient -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// Snapshot is what the running game reports about the local player
type Snapshot struct {
	PlayerName   string
	ChampionName string
	State        champion.GameState
}

// Client reads the Live Client Data API served by a running game
type Client interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
