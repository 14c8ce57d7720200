//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type keyBinding struct {
	key    ebiten.Key
	action Action
}

// keyBindings is ordered: keys pressed in the same frame apply top to bottom,
// so clear runs before fill and quit runs last.
var keyBindings = []keyBinding{
	{ebiten.KeySpace, ActionPause},
	{ebiten.KeyEnter, ActionResume},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyR, ActionFill},
	{ebiten.KeyS, ActionReseed},
	{ebiten.KeyEqual, ActionDensityUp},
	{ebiten.KeyKPAdd, ActionDensityUp},
	{ebiten.KeyMinus, ActionDensityDown},
	{ebiten.KeyKPSubtract, ActionDensityDown},
	{ebiten.KeyH, ActionToggleHUD},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game adapts a Controller to the ebiten.Game interface. ebiten calls Update
// and Draw sequentially on one goroutine, which is the only one touching the
// sim.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, scale int) *Game {
	size := ctl.Sim().Size()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctl.Sim()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	var pressed []Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			pressed = append(pressed, b.action)
		}
	}
	if !g.ctl.ApplyAll(pressed) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.ctl.Click(render.CellAt(mx, my, g.scale))
	}

	g.ctl.Tick()
	if g.ctl.HUDVisible() {
		g.hud.Update(g.ctl.Paused())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Sim().Cells(), g.onColor, g.offColor, g.scale)
	if g.ctl.HUDVisible() {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W * g.scale, s.H * g.scale
}
