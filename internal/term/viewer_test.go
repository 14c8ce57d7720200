package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newViewer(t *testing.T, w, h, cols, rows int) (*Viewer, *life.Life, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	l, err := life.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return NewViewer(screen, app.NewController(l, 1, 50), 60), l, screen
}

func styleAt(s tcell.Screen, x, y int) tcell.Style {
	_, _, style, _ := s.GetContent(x, y)
	return style
}

func rowText(s tcell.Screen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawUsesTwoColumnsPerCell(t *testing.T) {
	v, l, screen := newViewer(t, 4, 3, 20, 10)
	l.Set(1, 2, true)
	v.Draw()

	if styleAt(screen, 2, 2) != aliveStyle || styleAt(screen, 3, 2) != aliveStyle {
		t.Fatal("live cell (1,2) should fill columns 2 and 3 of row 2")
	}
	if styleAt(screen, 0, 2) != deadStyle || styleAt(screen, 4, 2) != deadStyle {
		t.Fatal("neighbouring dead cells drawn alive")
	}
	if got := rowText(screen, 3, 20); !strings.HasPrefix(got, "life 4x3 [running]") {
		t.Fatalf("status line = %q", got)
	}
}

func TestDrawClipsToSmallTerminal(t *testing.T) {
	v, l, screen := newViewer(t, 30, 30, 10, 5)
	l.Fill(100)
	v.Draw()
	if styleAt(screen, 9, 3) != aliveStyle {
		t.Fatal("visible part of the grid should be drawn")
	}
	if got := rowText(screen, 4, 10); !strings.HasPrefix(got, "life 30x30") {
		t.Fatalf("status line should take the last row, got %q", got)
	}
}

func TestMouseTogglesOnPress(t *testing.T) {
	v, l, _ := newViewer(t, 5, 5, 20, 10)

	v.HandleEvent(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone))
	if !l.Alive(2, 1) {
		t.Fatal("click on column 5 should toggle cell x=2")
	}
	v.HandleEvent(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone))
	if !l.Alive(2, 1) {
		t.Fatal("held button must not toggle again")
	}
	v.HandleEvent(tcell.NewEventMouse(5, 1, tcell.ButtonNone, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone))
	if l.Alive(2, 1) {
		t.Fatal("second press should toggle the cell back")
	}

	v.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(19, 9, tcell.Button1, tcell.ModNone))
	if l.Population() != 0 {
		t.Fatal("click outside the grid changed the board")
	}
}

func TestKeys(t *testing.T) {
	v, l, _ := newViewer(t, 5, 5, 20, 10)
	l.Fill(100)

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Fatal("clear should not quit")
	}
	if l.Population() != 0 {
		t.Fatal("c should clear the board")
	}
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !v.ctl.Paused() {
		t.Fatal("space should pause")
	}
	v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if v.ctl.Paused() {
		t.Fatal("enter should resume")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestAdvanceRunsAboveFrameRate(t *testing.T) {
	v, l, _ := newViewer(t, 5, 5, 20, 10)
	v.pacer = core.NewFixedStep(600)

	if got := v.advance(); got != 1 {
		t.Fatalf("first frame ran %d generations, want 1", got)
	}
	time.Sleep(50 * time.Millisecond)
	if got := v.advance(); got != 10 {
		t.Fatalf("600 tps after a stall ran %d generations, want the per-frame limit 10", got)
	}
	if l.Generation() != 11 {
		t.Fatalf("generation = %d, want 11", l.Generation())
	}

	v.ctl.Apply(app.ActionPause)
	time.Sleep(20 * time.Millisecond)
	if got := v.advance(); got != 0 {
		t.Fatalf("paused viewer ran %d generations", got)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	v, _, screen := newViewer(t, 5, 5, 20, 10)
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	v, l, _ := newViewer(t, 5, 5, 20, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := v.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run err = %v, want deadline exceeded", err)
	}
	if l.Generation() == 0 {
		t.Fatal("running viewer should have advanced the grid")
	}
}
