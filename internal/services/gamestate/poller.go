package gamestate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal/clients/liveclient"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

const DefaultInterval = 250 * time.Millisecond

// Poller keeps a StateHolder in sync with the running game
type Poller struct {
	client   liveclient.Client
	holder   *champion.StateHolder
	interval time.Duration
	onDeath  func()
	logger   *zap.Logger

	failing bool
}

type PollerConfig struct {
	Client liveclient.Client
	Holder *champion.StateHolder
	// Interval defaults to DefaultInterval
	Interval time.Duration
	// OnDeath runs when the champion goes from alive to dead
	OnDeath func()
	Logger  *zap.Logger
}

func NewPoller(cfg *PollerConfig) *Poller {
	if cfg.Client == nil {
		panic("live client is required")
	}
	if cfg.Holder == nil {
		panic("state holder is required")
	}

	p := &Poller{
		client:   cfg.Client,
		holder:   cfg.Holder,
		interval: cfg.Interval,
		onDeath:  cfg.OnDeath,
		logger:   cfg.Logger,
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Run polls until ctx is done
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Poll(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Poll fetches one snapshot. Failures keep the previous state; the game
// is unreachable between matches, so they are logged once per outage.
func (p *Poller) Poll(ctx context.Context) bool {
	snap, err := p.client.Snapshot(ctx)
	if err != nil {
		if !p.failing && ctx.Err() == nil {
			p.logger.Warn("live game data unavailable", zap.Error(err))
		}
		p.failing = true
		return false
	}
	if p.failing {
		p.logger.Info("live game data available", zap.String("champion", snap.ChampionName))
		p.failing = false
	}

	prev := p.holder.Set(snap.State)
	if snap.State.IsDead && !prev.IsDead {
		p.logger.Debug("champion died", zap.String("champion", snap.ChampionName))
		if p.onDeath != nil {
			p.onDeath()
		}
	}
	return true
}
