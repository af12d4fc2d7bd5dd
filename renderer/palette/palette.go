// Package palette maps agent state to display colors for every front end.
package palette

import "github.com/pthm-cable/devour/components"

// RGB is a display color independent of the drawing backend.
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by f, clamped to [0, 255].
func (c RGB) Scale(f float64) RGB {
	ch := func(v uint8) uint8 {
		return uint8(min(max(float64(v)*f, 0), 255))
	}
	return RGB{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

var (
	Controlled = RGB{R: 90, G: 200, B: 255}
	Background = RGB{R: 18, G: 22, B: 28}
	GridLine   = RGB{R: 34, G: 40, B: 50}
	Wall       = RGB{R: 200, G: 80, B: 80}
	Eat        = RGB{R: 255, G: 170, B: 60}
	PowerUp    = RGB{R: 140, G: 255, B: 160}
	GameOver   = RGB{R: 255, G: 60, B: 60}
)

// bandColors hold AI agent colors by size band, cool to hot.
var bandColors = [...]RGB{
	components.BandTiny:   {R: 120, G: 200, B: 120},
	components.BandSmall:  {R: 170, G: 210, B: 90},
	components.BandMedium: {R: 230, G: 200, B: 70},
	components.BandLarge:  {R: 240, G: 130, B: 60},
	components.BandHuge:   {R: 220, G: 60, B: 80},
}

// skinColors override the base color while a skin is active.
var skinColors = [...]RGB{
	components.SkinA: {R: 230, G: 100, B: 230},
	components.SkinB: {R: 250, G: 240, B: 120},
	components.SkinC: {R: 80, G: 240, B: 220},
}

// Agent returns the fill color of an agent. Skins win over everything, then
// the controlled agent's color, then the size band.
func Agent(skin components.Skin, band components.Band, controlled bool) RGB {
	if skin != components.SkinDefault && int(skin) < len(skinColors) {
		return skinColors[skin]
	}
	if controlled {
		return Controlled
	}
	if int(band) < len(bandColors) {
		return bandColors[band]
	}
	return bandColors[components.BandHuge]
}

// Glyph returns the terminal rune drawn for an agent of the given band.
func Glyph(band components.Band, controlled bool) rune {
	if controlled {
		return '@'
	}
	switch band {
	case components.BandTiny:
		return '.'
	case components.BandSmall:
		return 'o'
	case components.BandMedium:
		return 'O'
	case components.BandLarge:
		return '0'
	default:
		return '#'
	}
}
