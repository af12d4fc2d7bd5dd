package components

import "github.com/google/uuid"

// Skin is a cosmetic variant. It never affects collision or growth.
type Skin uint8

const (
	SkinDefault Skin = iota
	SkinA
	SkinB
	SkinC
)

// String returns the display name for a Skin.
func (s Skin) String() string {
	names := SkinNames()
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// SkinNames returns the names of all skins in constant order.
func SkinNames() []string {
	return []string{"default", "skin_a", "skin_b", "skin_c"}
}

// ParseSkin returns the skin with the given name.
func ParseSkin(name string) (Skin, bool) {
	for i, n := range SkinNames() {
		if n == name {
			return Skin(i), true
		}
	}
	return SkinDefault, false
}

// Agent bundles identity, control and power-up modifiers.
type Agent struct {
	ID              uuid.UUID
	Seq             uint64 // insertion order, used for stable tie-breaks
	Name            string
	Controlled      bool
	SpeedMultiplier float64
	Skin            Skin
}

// NewAgent returns an agent with neutral modifiers.
func NewAgent(seq uint64, name string, controlled bool) Agent {
	return Agent{
		ID:              uuid.New(),
		Seq:             seq,
		Name:            name,
		Controlled:      controlled,
		SpeedMultiplier: 1,
		Skin:            SkinDefault,
	}
}
