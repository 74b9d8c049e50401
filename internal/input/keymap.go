package input

import (
	"fmt"
	"unicode"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// KeyMap binds characters to ability slots. Lookups ignore case.
type KeyMap map[rune]champion.AbilityKey

// DefaultKeyMap is the stock QWER layout
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'q': champion.Q,
		'w': champion.W,
		'e': champion.E,
		'r': champion.R,
	}
}

// Lookup returns the ability bound to r
func (m KeyMap) Lookup(r rune) (champion.AbilityKey, bool) {
	key, ok := m[unicode.ToLower(r)]
	if !ok || !key.Valid() {
		return champion.None, false
	}
	return key, true
}

// ParseKeyMap reads bindings like "q=Q,w=W" where the left side is the
// character and the right side the ability.
func ParseKeyMap(bindings map[string]string) (KeyMap, error) {
	m := KeyMap{}
	for char, ability := range bindings {
		runes := []rune(char)
		if len(runes) != 1 {
			return nil, fmt.Errorf("binding %q must be a single character", char)
		}
		key, err := champion.ParseAbilityKey(ability)
		if err != nil {
			return nil, err
		}
		if !key.Valid() {
			return nil, fmt.Errorf("binding %q targets %s", char, key)
		}
		m[unicode.ToLower(runes[0])] = key
	}
	return m, nil
}
