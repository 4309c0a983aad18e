package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Field3 is a seeded, continuous 3D noise field. Values are deterministic for
// a fixed seed and lie in [-1, 1].
type Field3 struct {
	src opensimplex.Noise
}

func New(seed int64) *Field3 {
	return &Field3{src: opensimplex.New(seed)}
}

// At samples the field at (x, y, z).
func (f *Field3) At(x, y, z float64) float64 {
	return f.src.Eval3(x, y, z)
}
