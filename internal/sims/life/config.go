package life

import "strconv"

// Config controls the Life grid dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed    int64
	// Density is the percentage of cells seeded alive by Reset.
	Density int
}

// DefaultConfig returns an 80×60 board seeded half alive.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 60, Seed: 42, Density: 50}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable values and non-positive sizes keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Density = parsed
		}
	}
	return c
}
