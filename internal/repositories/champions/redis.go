package champions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

// DefaultVersionTTL is how long the latest game version is trusted before asking again
const DefaultVersionTTL = 24 * time.Hour

const latestVersionKey = "ddragon:version:latest"

// Data is the serialized form of a Record in Redis
type Data struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Version   string                  `json:"version"`
	Abilities map[string]AbilityCosts `json:"abilities"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// AbilityCosts holds the per-rank costs of one ability
type AbilityCosts struct {
	ManaCost   []int   `json:"mana_cost"`
	CooldownMS []int64 `json:"cooldown_ms"`
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// VersionTTL defaults to DefaultVersionTTL
	VersionTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed champion cache
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	ttl := cfg.VersionTTL
	if ttl <= 0 {
		ttl = DefaultVersionTTL
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func (r *redisRepo) key(version, id string) string {
	return fmt.Sprintf("ddragon:%s:champion:%s", version, strings.ToLower(id))
}

func (r *redisRepo) Get(ctx context.Context, version, id string) (*Record, error) {
	if version == "" || id == "" {
		return nil, casterr.InvalidArgument("version and champion id are required")
	}

	raw, err := r.client.Get(ctx, r.key(version, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, casterr.NotFoundf("champion %s not cached for %s", id, version)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get champion %s: %w", id, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal champion %s: %w", id, err)
	}
	return fromData(&data)
}

func (r *redisRepo) Put(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	raw, err := json.Marshal(toData(record))
	if err != nil {
		return fmt.Errorf("failed to marshal champion %s: %w", record.ID, err)
	}

	// data is immutable per version, so it never expires
	if err := r.client.Set(ctx, r.key(record.Version, record.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store champion %s: %w", record.ID, err)
	}
	return nil
}

func (r *redisRepo) LatestVersion(ctx context.Context) (string, error) {
	version, err := r.client.Get(ctx, latestVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", casterr.NotFound("latest version not cached")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest version: %w", err)
	}
	return version, nil
}

func (r *redisRepo) SetLatestVersion(ctx context.Context, version string) error {
	if version == "" {
		return casterr.InvalidArgument("version is required")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, latestVersionKey, version, r.ttl)
	pipe.SAdd(ctx, "ddragon:versions", version)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store latest version: %w", err)
	}
	return nil
}

func toData(record *Record) *Data {
	data := &Data{
		ID:        record.ID,
		Name:      record.Name,
		Version:   record.Version,
		Abilities: make(map[string]AbilityCosts),
		FetchedAt: record.FetchedAt,
	}
	for _, key := range champion.Keys {
		cooldowns := record.Costs.Cooldown[key]
		if len(cooldowns) == 0 {
			continue
		}
		ms := make([]int64, len(cooldowns))
		for i, cd := range cooldowns {
			ms[i] = cd.Milliseconds()
		}
		data.Abilities[key.String()] = AbilityCosts{
			ManaCost:   record.Costs.ManaCost[key],
			CooldownMS: ms,
		}
	}
	return data
}

func fromData(data *Data) (*Record, error) {
	costs := &champion.CostTable{}
	for name, ability := range data.Abilities {
		key, err := champion.ParseAbilityKey(name)
		if err != nil || !key.Valid() {
			return nil, casterr.Validationf("cached champion %s has unknown ability %q", data.ID, name)
		}
		cooldowns := make([]time.Duration, len(ability.CooldownMS))
		for i, ms := range ability.CooldownMS {
			cooldowns[i] = time.Duration(ms) * time.Millisecond
		}
		costs.Cooldown[key] = cooldowns
		costs.ManaCost[key] = ability.ManaCost
	}
	if err := costs.Validate(); err != nil {
		return nil, casterr.WrapWithCode(err, casterr.CodeValidation, "cached champion "+data.ID+" is corrupt")
	}

	return &Record{
		ID:        data.ID,
		Name:      data.Name,
		Version:   data.Version,
		Costs:     costs,
		FetchedAt: data.FetchedAt,
	}, nil
}
