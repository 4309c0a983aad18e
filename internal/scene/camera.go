package scene

import "driftgrid/internal/config"

// Camera is an orthographic view of the field: no foreshortening, so every
// cell renders at the same scale regardless of depth. Yaw orbits around the
// world Y axis, pitch around X; zoom and pan act in screen space.
type Camera struct {
	Yaw   float64
	Pitch float64
	Zoom  float64
	PanX  float64
	PanY  float64

	halfW float64
	halfH float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: 1, halfW: width / 2, halfH: height / 2}
}

// Orbit applies a drag delta in pixels to the yaw/pitch angles. Pitch is
// clamped short of the poles so the view never flips.
func (c *Camera) Orbit(dx, dy float64) {
	c.Yaw += dx * config.OrbitRate
	c.Pitch += dy * config.OrbitRate
	if c.Pitch > config.MaxPitch {
		c.Pitch = config.MaxPitch
	}
	if c.Pitch < -config.MaxPitch {
		c.Pitch = -config.MaxPitch
	}
}

// Dolly zooms by steps (positive in, negative out), clamped.
func (c *Camera) Dolly(steps float64) {
	c.Zoom += steps * config.ZoomRate
	if c.Zoom < config.MinZoom {
		c.Zoom = config.MinZoom
	}
	if c.Zoom > config.MaxZoom {
		c.Zoom = config.MaxZoom
	}
}

// Pan shifts the view by a drag delta in pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx * config.PanRate
	c.PanY += dy * config.PanRate
}

// Project maps a world point to screen coordinates: orbit rotation, then the
// orthographic drop of Z, then zoom and pan around the screen center.
func (c *Camera) Project(v Vec3) (float64, float64) {
	r := v.RotY(c.Yaw).RotX(c.Pitch)
	return c.halfW + r.X*c.Zoom + c.PanX, c.halfH + r.Y*c.Zoom + c.PanY
}
