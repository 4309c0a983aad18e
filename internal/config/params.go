package config

// Slider bounds. GUI writes go through the clamped setters below, so values
// inside Params never leave these ranges.
const (
	MinLineWidth  = 1.0
	MaxLineWidth  = 20.0
	MinLineHeight = 50.0
	MaxLineHeight = 300.0
	MinNoiseSpeed = 0.00001
	MaxNoiseSpeed = 0.0005
	MinNoiseInc   = 0.001
	MaxNoiseInc   = 0.1
)

// Params holds every tunable the frame update reads. A single instance is
// shared by reference between the update loop and the parameter panel.
type Params struct {
	LineWidth       float64
	LineHeight      float64
	NoiseSpeed      float64
	NoiseIncrementX float64
	NoiseIncrementY float64

	RotateX      bool
	RotateZ      bool
	MouseControl bool

	// DepthPerCell selects whether the depth offset advances once per cell
	// visited (the classic drift look, default) or once per frame.
	DepthPerCell bool
}

func DefaultParams() *Params {
	return &Params{
		LineWidth:       3,
		LineHeight:      160,
		NoiseSpeed:      0.0001,
		NoiseIncrementX: 0.02,
		NoiseIncrementY: 0.02,
		RotateX:         true,
		RotateZ:         true,
		DepthPerCell:    true,
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (p *Params) SetLineWidth(v float64)  { p.LineWidth = clamp(v, MinLineWidth, MaxLineWidth) }
func (p *Params) SetLineHeight(v float64) { p.LineHeight = clamp(v, MinLineHeight, MaxLineHeight) }
func (p *Params) SetNoiseSpeed(v float64) { p.NoiseSpeed = clamp(v, MinNoiseSpeed, MaxNoiseSpeed) }

func (p *Params) SetNoiseIncrementX(v float64) {
	p.NoiseIncrementX = clamp(v, MinNoiseInc, MaxNoiseInc)
}

func (p *Params) SetNoiseIncrementY(v float64) {
	p.NoiseIncrementY = clamp(v, MinNoiseInc, MaxNoiseInc)
}
