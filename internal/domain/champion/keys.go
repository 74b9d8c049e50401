package champion

import (
	"fmt"
	"strings"
)

// AbilityKey identifies one ability slot of a champion
type AbilityKey uint8

const (
	// None is the zero value and means "no ability"
	None AbilityKey = iota
	Q
	W
	E
	R
	Passive
)

// NumKeys sizes per-ability arrays; index 0 belongs to None and stays unused
const NumKeys = int(Passive) + 1

// Keys lists every real ability slot in display order
var Keys = [...]AbilityKey{Q, W, E, R, Passive}

var keyNames = [NumKeys]string{
	None:    "None",
	Q:       "Q",
	W:       "W",
	E:       "E",
	R:       "R",
	Passive: "Passive",
}

func (k AbilityKey) String() string {
	if int(k) < NumKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("AbilityKey(%d)", k)
}

// Valid reports whether k is a real ability slot
func (k AbilityKey) Valid() bool {
	return k >= Q && k <= Passive
}

func (k AbilityKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AbilityKey) UnmarshalText(text []byte) error {
	parsed, err := ParseAbilityKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseAbilityKey accepts the key name in any case
func ParseAbilityKey(s string) (AbilityKey, error) {
	for i, name := range keyNames {
		if strings.EqualFold(name, s) {
			return AbilityKey(i), nil
		}
	}
	return None, fmt.Errorf("unknown ability key %q", s)
}

// CastPreference is the player's global casting setting
type CastPreference uint8

const (
	PreferenceNormal CastPreference = iota
	PreferenceQuick
	PreferenceQuickWithIndicator
)

func (p CastPreference) String() string {
	switch p {
	case PreferenceNormal:
		return "normal"
	case PreferenceQuick:
		return "quick"
	case PreferenceQuickWithIndicator:
		return "quick_with_indicator"
	default:
		return fmt.Sprintf("CastPreference(%d)", p)
	}
}

// ParseCastPreference maps the configuration spelling onto a CastPreference
func ParseCastPreference(s string) (CastPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return PreferenceNormal, nil
	case "quick":
		return PreferenceQuick, nil
	case "quick_with_indicator", "quick-with-indicator", "indicator":
		return PreferenceQuickWithIndicator, nil
	default:
		return PreferenceNormal, fmt.Errorf("unknown cast preference %q", s)
	}
}
