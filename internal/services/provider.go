package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal/castmodes"
	"github.com/KirkDiggler/lol-cast-engine/internal/clients/ddragon"
	"github.com/KirkDiggler/lol-cast-engine/internal/clients/liveclient"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
	"github.com/KirkDiggler/lol-cast-engine/internal/repositories/champions"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/caster"
	championService "github.com/KirkDiggler/lol-cast-engine/internal/services/champion"
	"github.com/KirkDiggler/lol-cast-engine/internal/services/gamestate"
	"github.com/KirkDiggler/lol-cast-engine/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ChampionService championService.Service
	Controller      *caster.Controller
	State           *champion.StateHolder
	// Poller is nil without a live client
	Poller *gamestate.Poller
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DDragonClient      ddragon.Client
	ChampionRepository champions.Repository
	// CastModes defaults to the built-in catalog
	CastModes castmodes.Source

	Bus          *events.Bus
	Preference   champion.CastPreference
	KeyMap       input.KeyMap
	EarlyRelease time.Duration

	LiveClient   liveclient.Client
	PollInterval time.Duration

	Logger *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.ChampionRepository
	if repo == nil {
		repo = champions.NewInMemoryRepository(champions.DefaultVersionTTL)
	}

	modes := cfg.CastModes
	if modes == nil {
		modes = castmodes.Builtin()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus(logger.Named("events"))
	}

	// levels stay at zero until the first poll, so nothing is castable yet
	state := champion.NewStateHolder(champion.GameState{})

	controller := caster.NewController(&caster.ControllerConfig{
		Bus:           bus,
		State:         state,
		Preference:    cfg.Preference,
		KeyMap:        cfg.KeyMap,
		EarlyRelease:  cfg.EarlyRelease,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		Logger:        logger.Named("caster"),
	})

	provider := &Provider{
		ChampionService: championService.NewService(&championService.ServiceConfig{
			Client:     cfg.DDragonClient,
			Repository: repo,
			CastModes:  modes,
			Logger:     logger.Named("champion"),
		}),
		Controller: controller,
		State:      state,
	}

	if cfg.LiveClient != nil {
		provider.Poller = gamestate.NewPoller(&gamestate.PollerConfig{
			Client:   cfg.LiveClient,
			Holder:   state,
			Interval: cfg.PollInterval,
			OnDeath:  controller.CancelAllRecasts,
			Logger:   logger.Named("gamestate"),
		})
	}

	return provider
}
