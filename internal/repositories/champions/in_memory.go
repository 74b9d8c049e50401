package champions

import (
	"context"
	"strings"
	"sync"
	"time"

	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

type inMemoryRepo struct {
	mu        sync.RWMutex
	records   map[string]*Record
	version   string
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryRepository creates a process-local cache; the latest version expires after ttl
func NewInMemoryRepository(ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultVersionTTL
	}
	return &inMemoryRepo{
		records: make(map[string]*Record),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *inMemoryRepo) Get(_ context.Context, version, id string) (*Record, error) {
	if version == "" || id == "" {
		return nil, casterr.InvalidArgument("version and champion id are required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordKey(version, id)]
	if !ok {
		return nil, casterr.NotFoundf("champion %s not cached for %s", id, version)
	}
	copied := *rec
	return &copied, nil
}

func (r *inMemoryRepo) Put(_ context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.records[recordKey(record.Version, record.ID)] = &copied
	return nil
}

func (r *inMemoryRepo) LatestVersion(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.version == "" || !r.now().Before(r.expiresAt) {
		return "", casterr.NotFound("latest version not cached")
	}
	return r.version, nil
}

func (r *inMemoryRepo) SetLatestVersion(_ context.Context, version string) error {
	if version == "" {
		return casterr.InvalidArgument("version is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.version = version
	r.expiresAt = r.now().Add(r.ttl)
	return nil
}

func recordKey(version, id string) string {
	return version + ":" + strings.ToLower(id)
}

func validate(record *Record) error {
	if record == nil {
		return casterr.InvalidArgument("record cannot be nil")
	}
	if record.Version == "" || record.ID == "" {
		return casterr.InvalidArgument("record version and id are required")
	}
	if err := record.Costs.Validate(); err != nil {
		return casterr.WrapWithCode(err, casterr.CodeValidation, "invalid cost table for "+record.ID)
	}
	return nil
}
