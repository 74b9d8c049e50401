package ddragon

//go:generate mockgen -destination=mock/mock_client.go -package=mockddragon -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// Champion is the static data of one champion at a game version
type Champion struct {
	ID      string
	Name    string
	Version string
	Costs   *champion.CostTable
}

// Client reads Riot's Data Dragon static data
type Client interface {
	// LatestVersion returns the newest published game version
	LatestVersion(ctx context.Context) (string, error)
	// GetChampion fetches a champion by its Data Dragon id, e.g. "Velkoz"
	GetChampion(ctx context.Context, version, id string) (*Champion, error)
}
