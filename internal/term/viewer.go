// Package term renders a simulation in a terminal using tcell. Each grid cell
// takes two terminal columns so cells look roughly square.
package term

import (
	"context"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const frameRate = 60

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
)

// Viewer draws a controller's sim on a tcell screen and feeds terminal input
// back into it.
type Viewer struct {
	screen  tcell.Screen
	ctl     *app.Controller
	pacer   *core.FixedStep
	buttons tcell.ButtonMask
}

// NewViewer attaches ctl to an initialised screen and enables mouse input.
func NewViewer(screen tcell.Screen, ctl *app.Controller, tps int) *Viewer {
	screen.EnableMouse()
	return &Viewer{screen: screen, ctl: ctl, pacer: core.NewFixedStep(tps)}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			return v.ctl.Apply(app.ActionResume)
		case tcell.KeyRune:
			return v.ctl.Apply(app.ActionForRune(ev.Rune()))
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && v.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			v.ctl.Click(x/2, y)
		}
		v.buttons = ev.Buttons()
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw paints the grid, clipped to the terminal, with a status line below it.
func (v *Viewer) Draw() {
	sim := v.ctl.Sim()
	size := sim.Size()
	cells := sim.Cells()
	cols, rows := v.screen.Size()

	v.screen.Clear()
	for y := 0; y < size.H && y < rows-1; y++ {
		for x := 0; x < size.W && 2*x+1 < cols; x++ {
			style := deadStyle
			if cells[y*size.W+x] != 0 {
				style = aliveStyle
			}
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if v.ctl.HUDVisible() {
		line := min(size.H, rows-1)
		v.drawText(0, line, ui.StatusLine(sim, v.ctl.Paused()))
	}
	v.screen.Show()
}

func (v *Viewer) drawText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}

// advance runs the generations due since the last frame. Rates above the
// frame rate run several generations per frame.
func (v *Viewer) advance() int {
	limit := (v.pacer.TPS() + frameRate - 1) / frameRate
	stepped := 0
	for range v.pacer.Steps(limit) {
		if v.ctl.Tick() {
			stepped++
		}
	}
	return stepped
}

// Run drives the viewer until ctx is cancelled or the user quits. Events are
// forwarded over a channel so the sim is only touched from this goroutine.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.advance()
			v.Draw()
		}
	}
}
