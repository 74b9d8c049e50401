// Package castmodes knows how each champion's abilities are cast.
//
// Riot's static data has no notion of cast or recast behavior, so the
// modes are kept here as built-in definitions that a YAML file may extend
// or override.
package castmodes

import (
	"strings"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

//go:generate mockgen -destination=mock/mock_source.go -package=mockcastmodes -source=catalog.go

// Source looks up the cast modes of a champion by name
type Source interface {
	CastModes(name string) (*champion.Registry, error)
}

// Catalog is an in-memory Source keyed by champion name, ignoring case
type Catalog struct {
	modes map[string]map[champion.AbilityKey]champion.CastMode
}

func NewCatalog() *Catalog {
	return &Catalog{modes: make(map[string]map[champion.AbilityKey]champion.CastMode)}
}

// Add validates and stores the modes of one champion, replacing any earlier entry
func (c *Catalog) Add(name string, modes map[champion.AbilityKey]champion.CastMode) error {
	if strings.TrimSpace(name) == "" {
		return casterr.InvalidArgument("champion name is required")
	}
	if _, err := champion.NewRegistry(modes); err != nil {
		return casterr.WrapWithCode(err, casterr.CodeValidation, "invalid cast modes for "+name)
	}

	copied := make(map[champion.AbilityKey]champion.CastMode, len(modes))
	for k, v := range modes {
		copied[k] = v
	}
	c.modes[strings.ToLower(name)] = copied
	return nil
}

// Names lists the champions known to the catalog
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.modes))
	for name := range c.modes {
		names = append(names, name)
	}
	return names
}

func (c *Catalog) CastModes(name string) (*champion.Registry, error) {
	modes, ok := c.modes[strings.ToLower(name)]
	if !ok {
		return nil, casterr.NotFoundf("no cast modes for champion %s", name).WithMeta("champion", name)
	}
	return champion.NewRegistry(modes)
}

// Chain asks each source in turn and returns the first result that is not
// a not-found error
func Chain(sources ...Source) Source {
	return chain(sources)
}

type chain []Source

func (c chain) CastModes(name string) (*champion.Registry, error) {
	for _, src := range c {
		registry, err := src.CastModes(name)
		if err == nil {
			return registry, nil
		}
		if !casterr.IsNotFound(err) {
			return nil, err
		}
	}
	return nil, casterr.NotFoundf("no cast modes for champion %s", name).WithMeta("champion", name)
}
