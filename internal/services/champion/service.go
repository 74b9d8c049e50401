package champion

//go:generate mockgen -destination=mock/mock_service.go -package=mockchampion -source=service.go

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/lol-cast-engine/internal/castmodes"
	"github.com/KirkDiggler/lol-cast-engine/internal/clients/ddragon"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
	"github.com/KirkDiggler/lol-cast-engine/internal/repositories/champions"
)

// Service loads everything a champion needs before it can be activated
type Service interface {
	// Load returns validated cast modes and costs for the champion with the
	// given Data Dragon id. Nothing partial is ever returned.
	Load(ctx context.Context, id string) (*champion.Data, error)
}

type service struct {
	client     ddragon.Client
	repository champions.Repository
	castModes  castmodes.Source
	now        func() time.Time
	logger     *zap.Logger

	group singleflight.Group
}

type ServiceConfig struct {
	Client     ddragon.Client
	Repository champions.Repository
	CastModes  castmodes.Source
	Now        func() time.Time
	Logger     *zap.Logger
}

func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("data dragon client is required")
	}
	if cfg.CastModes == nil {
		panic("cast mode source is required")
	}

	svc := &service{
		client:     cfg.Client,
		repository: cfg.Repository,
		castModes:  cfg.CastModes,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
	if svc.repository == nil {
		svc.repository = champions.NewInMemoryRepository(champions.DefaultVersionTTL)
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

func (s *service) Load(ctx context.Context, id string) (*champion.Data, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, casterr.InvalidArgument("champion id is required")
	}

	modes, err := s.castModes.CastModes(id)
	if err != nil {
		if casterr.IsNotFound(err) {
			return nil, casterr.NotFoundf("champion %s is not supported", id).WithMeta("champion", id)
		}
		return nil, casterr.Wrapf(err, "failed to load cast modes for %s", id)
	}

	v, err, shared := s.group.Do(strings.ToLower(id), func() (any, error) {
		return s.loadRecord(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	record := v.(*champions.Record)

	s.logger.Info("champion loaded",
		zap.String("champion", record.ID),
		zap.String("version", record.Version),
		zap.Bool("shared", shared))

	return &champion.Data{
		Name:      record.ID,
		Version:   record.Version,
		CastModes: modes,
		Costs:     record.Costs,
	}, nil
}

func (s *service) loadRecord(ctx context.Context, id string) (*champions.Record, error) {
	version, err := s.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.repository.Get(ctx, version, id)
	if err == nil {
		s.logger.Debug("champion cache hit", zap.String("champion", id), zap.String("version", version))
		return record, nil
	}
	if !casterr.IsNotFound(err) {
		s.logger.Warn("champion cache unavailable", zap.String("champion", id), zap.Error(err))
	}

	champ, err := s.client.GetChampion(ctx, version, id)
	if err != nil {
		return nil, casterr.Wrapf(err, "failed to fetch champion %s", id).WithMeta("version", version)
	}

	record = &champions.Record{
		ID:        champ.ID,
		Name:      champ.Name,
		Version:   champ.Version,
		Costs:     champ.Costs,
		FetchedAt: s.now().UTC(),
	}
	if err := s.repository.Put(ctx, record); err != nil {
		s.logger.Warn("failed to cache champion", zap.String("champion", id), zap.Error(err))
	}
	return record, nil
}

func (s *service) latestVersion(ctx context.Context) (string, error) {
	version, err := s.repository.LatestVersion(ctx)
	if err == nil {
		return version, nil
	}
	if !casterr.IsNotFound(err) {
		s.logger.Warn("version cache unavailable", zap.Error(err))
	}

	version, err = s.client.LatestVersion(ctx)
	if err != nil {
		return "", casterr.Wrap(err, "failed to fetch latest game version")
	}
	if err := s.repository.SetLatestVersion(ctx, version); err != nil {
		s.logger.Warn("failed to cache latest version", zap.String("version", version), zap.Error(err))
	}
	return version, nil
}
