package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// KeyHelp summarises the key bindings shared by the front ends.
const KeyHelp = "space pause  n step  r fill  s reseed  c clear  +/- density  h hud  q quit"

// StatusLine describes the run state of sim in one line.
func StatusLine(sim core.Sim, paused bool) string {
	size := sim.Size()
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s %dx%d [%s]", sim.Name(), size.W, size.H, state)
	if stats, ok := sim.(core.Stats); ok {
		line += fmt.Sprintf(" gen %d pop %d", stats.Generation(), stats.Population())
	}
	return line
}

// HUDLines returns the text shown by the HUD: the status line, the sim's
// parameter snapshot when it publishes one, and the key help.
func HUDLines(sim core.Sim, paused bool) []string {
	lines := []string{StatusLine(sim, paused)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, provider.Parameters().Lines()...)
	}
	return append(lines, KeyHelp)
}
