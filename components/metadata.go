package components

import "github.com/pthm-cable/devour/config"

// Band is a coarse radius bucket the presentation layer maps to visuals.
type Band uint8

const (
	BandTiny Band = iota
	BandSmall
	BandMedium
	BandLarge
	BandHuge
)

// String returns the display name for a Band.
func (b Band) String() string {
	names := BandNames()
	if int(b) < len(names) {
		return names[b]
	}
	return "Unknown"
}

// BandNames returns the display names for all bands.
// The order matches the Band constants.
func BandNames() []string {
	return []string{"Tiny", "Small", "Medium", "Large", "Huge"}
}

// BandFor returns the band of a radius given the configured thresholds.
func BandFor(radius float64, t config.BandsConfig) Band {
	switch {
	case radius >= t.Huge:
		return BandHuge
	case radius >= t.Large:
		return BandLarge
	case radius >= t.Medium:
		return BandMedium
	case radius >= t.Small:
		return BandSmall
	default:
		return BandTiny
	}
}
