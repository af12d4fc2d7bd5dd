// Package camera provides a 2D camera that follows an agent around the
// bounded arena.
package camera

import "math"

// Camera controls the viewport into the arena.
// World coordinates are the arena's horizontal plane, centered on the origin
// and spanning [-HalfWidth, HalfWidth] on both axes.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// HalfWidth is the arena half extent the view is clamped to
	HalfWidth float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// Smoothing is the fraction of the remaining gap closed per Follow call.
	// 1 snaps to the target.
	Smoothing float32
}

// New creates a camera centered on the arena origin with 1:1 zoom.
func New(viewportW, viewportH, halfWidth float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		HalfWidth: halfWidth,
		MinZoom:   0.25,
		MaxZoom:   4.0,
		Smoothing: 0.15,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// WorldLength converts a world distance to pixels.
func (c *Camera) WorldLength(d float32) float32 {
	return d * c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Follow moves the camera towards (wx, wy) and keeps the view inside the
// arena.
func (c *Camera) Follow(wx, wy float32) {
	s := clamp(c.Smoothing, 0, 1)
	if s == 0 {
		s = 1
	}
	c.X += (wx - c.X) * s
	c.Y += (wy - c.Y) * s
	c.clampToArena()
}

// CenterOn snaps the camera to (wx, wy), clamped to the arena.
func (c *Camera) CenterOn(wx, wy float32) {
	c.X = wx
	c.Y = wy
	c.clampToArena()
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.clampToArena()
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampToArena()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToArena()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the arena center and default zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
// Returns (minX, minY, maxX, maxY) in world coordinates.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clampToArena keeps the visible area inside the arena on each axis. An axis
// whose visible extent exceeds the arena is centered instead.
func (c *Camera) clampToArena() {
	c.X = clampAxis(c.X, c.ViewportW/(2*c.Zoom), c.HalfWidth)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*c.Zoom), c.HalfWidth)
}

func clampAxis(center, halfView, halfWorld float32) float32 {
	if halfView >= halfWorld {
		return 0
	}
	return clamp(center, -halfWorld+halfView, halfWorld-halfView)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
