package scene

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"driftgrid/internal/config"
	"driftgrid/internal/noise"
)

// Cell is one grid slot: a fixed pivot plus the line attributes the frame
// update overwrites every step.
type Cell struct {
	Pivot Vec3 // world position, set once at construction

	Rot     Vec3 // per-axis pivot rotation, radians
	Opacity float64
	Length  float64
	Width   float64
}

// Endpoints returns the segment's world-space endpoints: the pivot itself and
// the pivot plus the rotated (0, 0, Length) direction.
func (c *Cell) Endpoints() (Vec3, Vec3) {
	tip := Vec3{0, 0, c.Length}.RotX(c.Rot.X).RotY(c.Rot.Y).RotZ(c.Rot.Z)
	return c.Pivot, c.Pivot.Add(tip)
}

// Field is the whole line grid plus the accumulators the per-frame noise walk
// carries between steps. Cells are stored row-major and never reallocated, so
// len(Cells) stays Rows*Cols for the life of the field.
type Field struct {
	Rows, Cols int
	Cells      []Cell

	// ColorA/ColorB are the shared per-vertex color pair: every segment is
	// stroked from ColorA at the pivot to ColorB at the tip.
	ColorA colorful.Color
	ColorB colorful.Color

	src   *noise.Field3
	depth float64
	rng   *rand.Rand
}

// NewField tiles a width x height viewport at the given step, centering the
// grid on the origin. One cell per position, ceil(height/step) rows by
// ceil(width/step) cols.
func NewField(width, height, step float64, seed int64) *Field {
	rows := int(math.Ceil(height / step))
	cols := int(math.Ceil(width / step))

	f := &Field{
		Rows:   rows,
		Cols:   cols,
		Cells:  make([]Cell, 0, rows*cols),
		ColorA: colorful.Color{R: 0.13, G: 0.59, B: 0.95},
		ColorB: colorful.Color{R: 0.91, G: 0.12, B: 0.39},
		src:    noise.New(seed),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.Cells = append(f.Cells, Cell{
				Pivot: Vec3{
					X: float64(c)*step - width/2,
					Y: float64(r)*step - height/2,
				},
			})
		}
	}
	return f
}

// Step runs one whole-grid noise pass. The column offset resets every row and
// advances by NoiseIncrementX per cell; the row offset resets every step and
// advances by NoiseIncrementY per row; the depth offset persists across steps
// and advances by NoiseSpeed either per cell visited or per step, depending on
// DepthPerCell. Attributes are a pure function of (offsets, params, seed).
func (f *Field) Step(p *config.Params) {
	rowOff := 0.0
	i := 0
	for r := 0; r < f.Rows; r++ {
		colOff := 0.0
		for c := 0; c < f.Cols; c++ {
			n := f.src.At(colOff, rowOff, f.depth)

			cell := &f.Cells[i]
			cell.Opacity = Remap(n, -1, 1, 0, 1)
			cell.Length = Remap(n, -1, 1, 0, p.LineHeight)
			cell.Width = Remap(n, -1, 1, 1, p.LineWidth)

			angle := Remap(n, -1, 1, 0, math.Pi)
			cell.Rot = Vec3{}
			if p.RotateX {
				cell.Rot.X = angle
			}
			if p.RotateZ {
				cell.Rot.Z = angle
			}

			colOff += p.NoiseIncrementX
			if p.DepthPerCell {
				f.depth += p.NoiseSpeed
			}
			i++
		}
		rowOff += p.NoiseIncrementY
	}
	if !p.DepthPerCell {
		f.depth += p.NoiseSpeed
	}
}

// Depth exposes the persistent depth accumulator.
func (f *Field) Depth() float64 { return f.depth }

// RandomizeColor replaces the second color of the pair with three independent
// uniform draws in [0, 1). The first color is untouched; segments share the
// pair, so every line picks up the change on its next draw.
func (f *Field) RandomizeColor() {
	f.ColorB = colorful.Color{
		R: f.rng.Float64(),
		G: f.rng.Float64(),
		B: f.rng.Float64(),
	}
}

// SetColorB replaces the second color of the pair, clamped to valid RGB.
func (f *Field) SetColorB(c colorful.Color) {
	f.ColorB = c.Clamped()
}
