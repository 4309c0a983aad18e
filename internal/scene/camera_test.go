package scene

import (
	"math"
	"testing"

	"driftgrid/internal/config"
)

func TestProjectIdentity(t *testing.T) {
	c := NewCamera(800, 600)
	x, y := c.Project(Vec3{-400, -300, 0})
	if x != 0 || y != 0 {
		t.Errorf("corner projected to (%v, %v), want (0, 0)", x, y)
	}
	x, y = c.Project(Vec3{0, 0, 120})
	if x != 400 || y != 300 {
		t.Errorf("orthographic drop of Z failed: (%v, %v), want (400, 300)", x, y)
	}
}

func TestProjectZoomAndPan(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 2
	c.Pan(10, -20)
	x, y := c.Project(Vec3{100, 50, 0})
	if x != 400+200+10*config.PanRate || y != 300+100-20*config.PanRate {
		t.Errorf("zoomed+panned projection = (%v, %v)", x, y)
	}
}

func TestProjectYawHalfTurn(t *testing.T) {
	c := NewCamera(800, 600)
	c.Yaw = math.Pi
	x, y := c.Project(Vec3{100, 0, 0})
	if math.Abs(x-300) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("half-turn yaw projection = (%v, %v), want (300, 300)", x, y)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewCamera(800, 600)
	c.Orbit(0, 1e6)
	if c.Pitch != config.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, config.MaxPitch)
	}
	c.Orbit(0, -1e7)
	if c.Pitch != -config.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, -config.MaxPitch)
	}
}

func TestDollyClampsZoom(t *testing.T) {
	c := NewCamera(800, 600)
	c.Dolly(1e4)
	if c.Zoom != config.MaxZoom {
		t.Errorf("zoom = %v, want %v", c.Zoom, config.MaxZoom)
	}
	c.Dolly(-1e5)
	if c.Zoom != config.MinZoom {
		t.Errorf("zoom = %v, want %v", c.Zoom, config.MinZoom)
	}
}
