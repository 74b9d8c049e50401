package champions

//go:generate mockgen -destination=mock/mock.go -package=mockchampions -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// Record is the cached static data of one champion at one game version
type Record struct {
	ID        string
	Name      string
	Version   string
	Costs     *champion.CostTable
	FetchedAt time.Time
}

// Repository caches Data Dragon lookups between runs
type Repository interface {
	// Get returns a not found error when the champion is not cached for version
	Get(ctx context.Context, version, id string) (*Record, error)
	Put(ctx context.Context, record *Record) error

	// LatestVersion returns a not found error once the cached version expired
	LatestVersion(ctx context.Context) (string, error)
	SetLatestVersion(ctx context.Context, version string) error
}
