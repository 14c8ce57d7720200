package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyPattern is returned when a pattern has no rows.
	ErrEmptyPattern = errors.New("life: empty pattern")
	// ErrBadPatternRune is returned for characters other than '.', 'O' or '*'.
	ErrBadPatternRune = errors.New("life: bad pattern character")
	// ErrUnknownPattern is returned when a built-in pattern name is not known.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// Pattern is a rectangular block of cells in row-major order.
type Pattern struct {
	Name  string
	W, H  int
	Cells []uint8
}

// ParsePattern reads the plaintext (.cells) format: lines starting with '!'
// are comments, 'O' or '*' is alive and '.' is dead. Short rows are padded
// with dead cells.
func ParsePattern(name, text string) (Pattern, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, name)
	}

	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	if w == 0 {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, name)
	}
	p := Pattern{Name: name, W: w, H: len(rows), Cells: make([]uint8, w*len(rows))}
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case 'O', '*':
				p.Cells[y*w+x] = 1
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w %q in %q at line %d col %d", ErrBadPatternRune, r[x], name, y+1, x+1)
			}
		}
	}
	return p, nil
}

// Population returns the number of live cells in the pattern.
func (p Pattern) Population() int {
	n := 0
	for _, c := range p.Cells {
		n += int(c)
	}
	return n
}

// Stamp makes the pattern's live cells alive with its top-left corner at
// (x, y). Dead pattern cells leave the board untouched and cells falling off
// the grid are dropped.
func (l *Life) Stamp(p Pattern, x, y int) {
	for py := 0; py < p.H; py++ {
		for px := 0; px < p.W; px++ {
			if p.Cells[py*p.W+px] != 0 {
				l.Set(x+px, y+py, true)
			}
		}
	}
}

// StampCentered stamps p in the middle of the grid.
func (l *Life) StampCentered(p Pattern) {
	l.Stamp(p, (l.Width()-p.W)/2, (l.Height()-p.H)/2)
}

var builtins = map[string]string{
	"block":       "OO\nOO",
	"blinker":     "OOO",
	"toad":        ".OOO\nOOO.",
	"beacon":      "OO..\nOO..\n..OO\n..OO",
	"glider":      ".O.\n..O\nOOO",
	"r-pentomino": ".OO\nOO.\n.O.",
}

// Builtin returns one of the bundled patterns by name.
func Builtin(name string) (Pattern, error) {
	text, ok := builtins[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return ParsePattern(name, text)
}

// BuiltinNames lists the bundled pattern names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
