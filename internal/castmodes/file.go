package castmodes

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

// fileSchema is the YAML layout of a cast modes file:
//
//	champions:
//	  Xerath:
//	    Q:
//	      cast: instant
//	      recast: {mode: key_up, max: 1, window_ms: 4000}
//	    W: {cast: normal}
//
// Abilities that are not listed are not castable.
type fileSchema struct {
	Champions map[string]map[string]abilitySchema `yaml:"champions"`
}

type abilitySchema struct {
	Cast          string        `yaml:"cast"`
	PointAndClick bool          `yaml:"point_and_click"`
	Recast        *recastSchema `yaml:"recast"`
}

type recastSchema struct {
	Mode     string `yaml:"mode"`
	OnKeyUp  bool   `yaml:"on_key_up"`
	Max      int    `yaml:"max"`
	WindowMS int    `yaml:"window_ms"`
}

// LoadFile reads a cast modes file into a catalog
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, casterr.Wrapf(err, "failed to open cast modes file %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Load reads cast modes in the YAML file layout from r
func Load(r io.Reader) (*Catalog, error) {
	var doc fileSchema
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, casterr.WrapWithCode(err, casterr.CodeValidation, "failed to parse cast modes")
	}

	catalog := NewCatalog()
	for name, abilities := range doc.Champions {
		modes := make(map[champion.AbilityKey]champion.CastMode, len(abilities))
		for rawKey, ability := range abilities {
			key, err := champion.ParseAbilityKey(rawKey)
			if err != nil || !key.Valid() {
				return nil, casterr.Validationf("champion %s: unknown ability %q", name, rawKey)
			}
			mode, err := ability.toMode()
			if err != nil {
				return nil, casterr.Validationf("champion %s ability %s: %v", name, key, err)
			}
			modes[key] = mode
		}
		if err := catalog.Add(name, modes); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func (a abilitySchema) toMode() (champion.CastMode, error) {
	var mode champion.CastMode
	switch strings.ToLower(a.Cast) {
	case "instant":
		mode = champion.InstantCast()
	case "normal":
		mode = champion.NormalCast()
	case "", "none":
		if a.Recast != nil || a.PointAndClick {
			return mode, fmt.Errorf("ability without cast cannot recast or target")
		}
		return champion.NotCastable(), nil
	default:
		return mode, fmt.Errorf("unknown cast %q", a.Cast)
	}
	mode.PointAndClick = a.PointAndClick

	if a.Recast == nil {
		return mode, nil
	}
	policy := champion.RecastPolicy{
		OnKeyUp:    a.Recast.OnKeyUp,
		MaxRecasts: a.Recast.Max,
		Window:     time.Duration(a.Recast.WindowMS) * time.Millisecond,
	}
	switch strings.ToLower(a.Recast.Mode) {
	case "instant":
		policy.Instant = true
	case "normal":
		policy.Normal = true
	case "key_up":
		policy.OnKeyUp = true
	case "":
	default:
		return mode, fmt.Errorf("unknown recast mode %q", a.Recast.Mode)
	}
	return mode.WithRecast(policy), nil
}
