package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"driftgrid/internal/config"
	"driftgrid/internal/scene"
)

// slider is a horizontal track bound to one tunable through a getter and a
// clamping setter on the shared Params.
type slider struct {
	label    string
	min, max float64
	get      func() float64
	set      func(float64)

	trackX, trackY int
	dragging       bool
}

type toggle struct {
	label string
	get   func() bool
	set   func(bool)

	x, y int
}

type button struct {
	label string
	fire  func()

	x, y, w, h       int
	hovered, pressed bool
}

// panel is the in-window parameter panel. It holds a reference to the game's
// Params (not a copy); every control writes straight into the struct the
// frame update reads.
type panel struct {
	g *Game

	sliders []*slider
	toggles []*toggle
	buttons []*button

	x, y, w, h int
}

func newPanel(g *Game) *panel {
	p := &panel{g: g, x: config.PanelX, y: config.PanelY, w: config.PanelWidth}
	params := g.params

	cursor := p.y + config.PanelPad + 18 // title row

	addSlider := func(label string, min, max float64, get func() float64, set func(float64)) {
		p.sliders = append(p.sliders, &slider{
			label: label, min: min, max: max, get: get, set: set,
			trackX: p.x + config.PanelPad,
			trackY: cursor + 18,
		})
		cursor += config.SliderRowH
	}
	addToggle := func(label string, get func() bool, set func(bool)) {
		p.toggles = append(p.toggles, &toggle{
			label: label, get: get, set: set,
			x: p.x + config.PanelPad, y: cursor,
		})
		cursor += config.ToggleRowH
	}

	addSlider("Line width", config.MinLineWidth, config.MaxLineWidth,
		func() float64 { return params.LineWidth }, params.SetLineWidth)
	addSlider("Line height", config.MinLineHeight, config.MaxLineHeight,
		func() float64 { return params.LineHeight }, params.SetLineHeight)
	addSlider("Noise speed", config.MinNoiseSpeed, config.MaxNoiseSpeed,
		func() float64 { return params.NoiseSpeed }, params.SetNoiseSpeed)
	addSlider("Noise inc X", config.MinNoiseInc, config.MaxNoiseInc,
		func() float64 { return params.NoiseIncrementX }, params.SetNoiseIncrementX)
	addSlider("Noise inc Y", config.MinNoiseInc, config.MaxNoiseInc,
		func() float64 { return params.NoiseIncrementY }, params.SetNoiseIncrementY)

	cursor += 6
	addToggle("Rotate X",
		func() bool { return params.RotateX }, func(v bool) { params.RotateX = v })
	addToggle("Rotate Z",
		func() bool { return params.RotateZ }, func(v bool) { params.RotateZ = v })
	addToggle("Mouse control",
		func() bool { return params.MouseControl }, func(v bool) { params.MouseControl = v })
	addToggle("Depth per cell",
		func() bool { return params.DepthPerCell }, func(v bool) { params.DepthPerCell = v })

	cursor += 8
	p.buttons = append(p.buttons, &button{
		label: "Random color", fire: g.field.RandomizeColor,
		x: p.x + config.PanelPad, y: cursor,
		w: config.ButtonWidth, h: config.ButtonH,
	})
	p.buttons = append(p.buttons, &button{
		label: "Pick color", fire: p.pickColor,
		x: p.x + config.PanelPad + config.ButtonWidth + 10, y: cursor,
		w: config.ButtonWidth, h: config.ButtonH,
	})
	cursor += config.ButtonH

	p.h = cursor + config.PanelPad - p.y
	return p
}

// update runs the panel's input handling for one frame and reports whether
// the mouse is owned by the panel (inside it, or mid-drag on a slider).
func (p *panel) update(mouseX, mouseY int) bool {
	inside := mouseX >= p.x && mouseX <= p.x+p.w && mouseY >= p.y && mouseY <= p.y+p.h

	dragging := false
	for _, s := range p.sliders {
		over := mouseX >= s.trackX-config.KnobRadius && mouseX <= s.trackX+config.SliderW+config.KnobRadius &&
			mouseY >= s.trackY-8 && mouseY <= s.trackY+config.SliderH+8
		if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.dragging = true
		}
		if s.dragging {
			if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
				s.dragging = false
			} else {
				t := clamp01(float64(mouseX-s.trackX) / config.SliderW)
				s.set(scene.Remap(t, 0, 1, s.min, s.max))
				dragging = true
			}
		}
	}

	for _, t := range p.toggles {
		over := mouseX >= t.x && mouseX <= p.x+p.w-config.PanelPad &&
			mouseY >= t.y && mouseY <= t.y+config.ToggleSize+4
		if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			t.set(!t.get())
		}
	}

	for _, b := range p.buttons {
		b.hovered = mouseX >= b.x && mouseX <= b.x+b.w && mouseY >= b.y && mouseY <= b.y+b.h
		if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			b.pressed = true
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if b.pressed && b.hovered {
				b.fire()
			}
			b.pressed = false
		}
	}

	return inside || dragging
}

func (p *panel) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h),
		color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h),
		2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, "Parameters", p.x+config.PanelPad, p.y+config.PanelPad-6)

	trackColor := color.RGBA{R: 60, G: 70, B: 90, A: 255}
	fillColor := color.RGBA{R: 100, G: 140, B: 220, A: 255}
	knobColor := color.RGBA{R: 220, G: 228, B: 240, A: 255}

	for _, s := range p.sliders {
		label := fmt.Sprintf("%s  %.4g", s.label, s.get())
		ebitenutil.DebugPrintAt(screen, label, s.trackX, s.trackY-18)

		t := clamp01((s.get() - s.min) / (s.max - s.min))
		knobX := float64(s.trackX) + t*config.SliderW

		vector.DrawFilledRect(screen, float32(s.trackX), float32(s.trackY),
			config.SliderW, config.SliderH, trackColor, false)
		vector.DrawFilledRect(screen, float32(s.trackX), float32(s.trackY),
			float32(t*config.SliderW), config.SliderH, fillColor, false)
		vector.DrawFilledCircle(screen, float32(knobX), float32(s.trackY)+config.SliderH/2,
			config.KnobRadius, knobColor, false)
	}

	for _, t := range p.toggles {
		vector.StrokeRect(screen, float32(t.x), float32(t.y),
			config.ToggleSize, config.ToggleSize, 1, knobColor, false)
		if t.get() {
			vector.DrawFilledRect(screen, float32(t.x)+3, float32(t.y)+3,
				config.ToggleSize-6, config.ToggleSize-6, fillColor, false)
		}
		ebitenutil.DebugPrintAt(screen, t.label, t.x+config.ToggleSize+8, t.y-2)
	}

	for _, b := range p.buttons {
		var bgColor color.Color
		if b.pressed {
			bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
		} else if b.hovered {
			bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
		} else {
			bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
		}

		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
			bgColor, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
			2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

		textWidth := len(b.label) * 6
		ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-14)/2)
	}
}

// pickColor opens the system color chooser for the tip color of the pair.
func (p *panel) pickColor() {
	picked, err := zenity.SelectColor(
		zenity.Title("Line Color"),
		zenity.Color(p.g.field.ColorB),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		p.g.lastErr = err
		return
	}
	if c, ok := colorful.MakeColor(picked); ok {
		p.g.field.SetColorB(c)
	}
}
