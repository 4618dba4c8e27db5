package render

import (
	"math"

	"github.com/1siamBot/iso-tactics/engine/maplib"
)

// Camera represents the viewport into the isometric world. World space
// grows upward, screen space grows downward.
type Camera struct {
	X, Y    float64 // camera center position (world coords)
	Zoom    float64 // zoom level (1.0 = default)
	MinZoom float64
	MaxZoom float64
	ScreenW int // viewport width in pixels
	ScreenH int // viewport height in pixels
	Speed   float64 // pan speed (pixels per second)
}

// NewCamera creates a camera centered on the world origin
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 3.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Pan moves the camera by a screen pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	before := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	after := c.ScreenToWorld(screenX, screenY)
	// Keep the point under the pointer stationary
	c.X += before.X - after.X
	c.Y += before.Y - after.Y
}

// CenterOn centers the camera on a world point
func (c *Camera) CenterOn(p maplib.Vec2) {
	c.X = p.X
	c.Y = p.Y
}

// WorldToScreen converts a world point to screen pixels
func (c *Camera) WorldToScreen(p maplib.Vec2) (float64, float64) {
	sx := (p.X-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := float64(c.ScreenH)/2 - (p.Y-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts a screen pixel to a world point
func (c *Camera) ScreenToWorld(sx, sy int) maplib.Vec2 {
	return maplib.Vec2{
		X: (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X,
		Y: (float64(c.ScreenH)/2-float64(sy))/c.Zoom + c.Y,
	}
}
