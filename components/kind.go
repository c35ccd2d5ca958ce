package components

import (
	"fmt"
	"strings"
)

// Kind is the closed set of creature variants living in the tank.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBaseFish
	KindBiggerFish
	KindPescaoCute
	KindClownFish

	kindCount
)

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"Player", "BaseFish", "BiggerFish", "PescaoCute", "ClownFish"}
}

// NPCKinds returns every non-player kind in declaration order.
func NPCKinds() []Kind {
	return []Kind{KindBaseFish, KindBiggerFish, KindPescaoCute, KindClownFish}
}

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "UnknownFish"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsNPC reports whether k is a non-player creature.
func (k Kind) IsNPC() bool {
	return k != KindPlayer && k.Valid()
}

// ParseKind resolves a kind name. "NPCreature" is accepted as an alias
// for BaseFish.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "NPCreature") {
		return KindBaseFish, nil
	}
	for i, n := range KindNames() {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown creature kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
