package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 1)
	g.Set(-1, 0, 1)
	g.Set(4, 0, 1)
	g.Set(0, 3, 1)

	if got := g.At(3, 2); got != 1 {
		t.Fatalf("At(3,2) = %d, want 1", got)
	}
	if got := g.Count(); got != 1 {
		t.Fatalf("out-of-range writes leaked: count = %d", got)
	}
	for _, p := range [][2]int{{-1, -1}, {4, 2}, {3, 3}, {100, -100}} {
		if got := g.At(p[0], p[1]); got != 0 {
			t.Fatalf("At(%d,%d) = %d, want 0 outside the grid", p[0], p[1], got)
		}
	}
	if idx := g.Index(3, 2); idx != 11 {
		t.Fatalf("Index(3,2) = %d, want 11", idx)
	}

	g.Clear()
	if g.Count() != 0 {
		t.Fatal("Clear left live cells")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("got %dx%d with %d cells, want 1x1", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillPercent(NewRNG(7), a, 50)
	FillPercent(NewRNG(7), b, 50)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}

	c := make([]uint8, 256)
	FillPercent(NewRNG(8), c, 50)
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical fills")
	}

	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

type fixedDraws []int

func (f *fixedDraws) IntN(int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestFillPercentThreshold(t *testing.T) {
	draws := fixedDraws{0, 29, 30, 99}
	buf := make([]uint8, 4)
	FillPercent(&draws, buf, 30)
	if want := []uint8{1, 1, 0, 0}; !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{
			{Key: "w", Label: "Width", Value: "80"},
			{Key: "h", Label: "Height", Value: "60"},
		}},
		{Name: "Seeding", Params: []Parameter{{Key: "density", Label: "Density", Value: "50"}}},
	}}
	want := []string{"World: Width 80, Height 60", "Seeding: Density 50"}
	if got := snap.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Steps(1); got != 1 {
		t.Fatalf("first call = %d steps, want 1", got)
	}
	if got := fs.Steps(1); got != 0 {
		t.Fatalf("no time elapsed: %d steps, want 0", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Steps(1); got != 0 {
		t.Fatalf("half a tick elapsed: %d steps, want 0", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Steps(1); got != 1 {
		t.Fatalf("a full tick elapsed: %d steps, want 1", got)
	}

	fs.SetTPS(0)
	if fs.TPS() != DefaultTPS {
		t.Fatalf("TPS() = %d, want default %d", fs.TPS(), DefaultTPS)
	}
}

func TestFixedStepDrainsSeveralTicksAndDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.Steps(4)

	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Steps(4); got != 2 {
		t.Fatalf("250ms at 10 tps: %d steps, want 2", got)
	}
	clock = clock.Add(time.Second)
	if got := fs.Steps(4); got != 4 {
		t.Fatalf("stalled second: %d steps, want the limit 4", got)
	}
	if fs.accumulator >= fs.step {
		t.Fatalf("accumulator %v kept the dropped backlog", fs.accumulator)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Steps(4); got != 1 {
		t.Fatalf("remainder plus 50ms: %d steps, want 1", got)
	}
	if got := fs.Steps(0); got != 0 {
		t.Fatalf("nothing due: %d steps, want 0", got)
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory must not register")
	}

	Register("zz-test", func(map[string]string) (Sim, error) { return nil, nil })
	t.Cleanup(func() { delete(sims, "zz-test") })
	names := SimNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "zz-test") {
		t.Fatalf("SimNames() = %v", names)
	}
}
