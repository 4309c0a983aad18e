package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"driftgrid/internal/config"
	"driftgrid/internal/scene"
)

// Game drives the drift animation: one Update advances the noise field by a
// single whole-grid pass, one Draw strokes every segment through the camera.
// Panel callbacks and key handling run inside Update, so all state is touched
// from the one game goroutine.
type Game struct {
	params *config.Params
	field  *scene.Field
	cam    *scene.Camera
	panel  *panel

	showUI bool

	// input edge detection
	prevKey      map[ebiten.Key]bool
	lastX, lastY int

	lastErr error
}

func New(seed int64) *Game {
	g := &Game{
		params:  config.DefaultParams(),
		field:   scene.NewField(config.WindowWidth, config.WindowHeight, config.GridStep, seed),
		cam:     scene.NewCamera(config.WindowWidth, config.WindowHeight),
		showUI:  true,
		prevKey: map[ebiten.Key]bool{},
	}
	g.panel = newPanel(g)
	return g
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyH) {
		g.showUI = !g.showUI
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()

	captured := false
	if g.showUI {
		captured = g.panel.update(mouseX, mouseY)
	}

	if g.params.MouseControl && !captured {
		dx := float64(mouseX - g.lastX)
		dy := float64(mouseY - g.lastY)
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
			!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.cam.Orbit(dx, dy)
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) &&
			!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.cam.Pan(dx, dy)
		}
		if _, wheelY := ebiten.Wheel(); wheelY != 0 {
			g.cam.Dolly(wheelY)
		}
	}
	g.lastX, g.lastY = mouseX, mouseY

	g.field.Step(g.params)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 10, B: 16, A: 255})

	g.drawField(screen)

	if g.showUI {
		g.panel.draw(screen)
		g.drawStats(screen)
	}

	status := "H: toggle panel | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawField strokes every segment in two halves so the start half carries the
// pair's first color and the tip half the second.
func (g *Game) drawField(screen *ebiten.Image) {
	for i := range g.field.Cells {
		c := &g.field.Cells[i]

		alpha := uint8(255 * clamp01(c.Opacity))
		if alpha == 0 {
			continue
		}

		a, b := c.Endpoints()
		ax, ay := g.cam.Project(a)
		bx, by := g.cam.Project(b)
		mx, my := (ax+bx)/2, (ay+by)/2

		w := float32(c.Width)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(mx), float32(my),
			w, toRGBA(g.field.ColorA, alpha), true)
		vector.StrokeLine(screen, float32(mx), float32(my), float32(bx), float32(by),
			w, toRGBA(g.field.ColorB, alpha), true)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	stats := fmt.Sprintf("FPS %0.1f | TPS %0.1f | %d lines | depth %.3f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.field.Cells), g.field.Depth())
	ebitenutil.DebugPrintAt(screen, stats, 12, config.WindowHeight-24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
