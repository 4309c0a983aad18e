package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Grid resolution: one line segment every GridStep pixels.
	// The grid is built once at startup and never rebuilt.
	GridStep = 28

	// Panel dimensions
	PanelX      = 16
	PanelY      = 40
	PanelWidth  = 270
	PanelPad    = 12
	SliderRowH  = 36
	SliderW     = PanelWidth - 2*PanelPad
	SliderH     = 6
	KnobRadius  = 6
	ToggleRowH  = 22
	ToggleSize  = 12
	ButtonWidth = 112
	ButtonH     = 26

	// Camera interaction
	OrbitRate = 0.01
	PanRate   = 1.0
	ZoomRate  = 0.1
	MinZoom   = 0.2
	MaxZoom   = 5.0
	MaxPitch  = 1.55
)
