package life

import (
	"errors"
	"slices"
	"testing"
)

func TestParsePattern(t *testing.T) {
	text := "! Glider\n! a comment\n.O\n..O\r\nOOO\n\n"
	p, err := ParsePattern("glider", text)
	if err != nil {
		t.Fatal(err)
	}
	if p.W != 3 || p.H != 3 {
		t.Fatalf("size %dx%d, want 3x3", p.W, p.H)
	}
	want := []uint8{
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells %v, want %v", p.Cells, want)
	}
	if p.Population() != 5 {
		t.Fatalf("Population() = %d, want 5", p.Population())
	}
}

func TestParsePatternStarsAreAlive(t *testing.T) {
	p, err := ParsePattern("stars", "*.*")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.Cells, []uint8{1, 0, 1}) {
		t.Fatalf("cells %v", p.Cells)
	}
}

func TestParsePatternErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"empty", "", ErrEmptyPattern},
		{"comments only", "!one\n!two\n", ErrEmptyPattern},
		{"blank rows", "\n\n", ErrEmptyPattern},
		{"bad rune", "O.\n.X", ErrBadPatternRune},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePattern(tc.name, tc.text); !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	if !slices.IsSorted(names) {
		t.Fatalf("BuiltinNames() not sorted: %v", names)
	}
	for _, name := range names {
		p, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", name, err)
		}
		if p.Population() == 0 {
			t.Fatalf("Builtin(%q) has no live cells", name)
		}
	}
	if _, err := Builtin("gosper"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	l := newGrid(t, 4, 4)
	block, err := Builtin("block")
	if err != nil {
		t.Fatal(err)
	}
	l.Stamp(block, 3, 3)
	l.Stamp(block, -1, -1)
	expectAlive(t, l, map[[2]int]bool{{3, 3}: true, {0, 0}: true}, "after stamping")

	l.Stamp(block, 10, 10)
	if l.Population() != 2 {
		t.Fatalf("stamp fully outside the grid changed population to %d", l.Population())
	}
}

func TestStampKeepsExistingCells(t *testing.T) {
	l := newGrid(t, 5, 5)
	l.Set(0, 0, true)
	p, err := ParsePattern("dot", "..\n.O")
	if err != nil {
		t.Fatal(err)
	}
	l.Stamp(p, 0, 0)
	expectAlive(t, l, map[[2]int]bool{{0, 0}: true, {1, 1}: true}, "after stamping")
}
