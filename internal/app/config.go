package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned by Validate for unusable settings.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownSim is returned by NewSim when no simulation is registered
	// under the configured name.
	ErrUnknownSim = errors.New("unknown sim")
)

// Config represents the command-line and config-file parameters shared by
// the front ends.
type Config struct {
	Path string `yaml:"-"`

	Sim     string `yaml:"sim"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	Seed    int64  `yaml:"seed"`
	Density int    `yaml:"density"`
	Pattern string `yaml:"pattern"`
}

// NewConfig returns a Config populated with sensible defaults: an 800×600
// window of 10-pixel cells, half of them seeded alive, at 60 ticks per second.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:     "life",
		Width:   def.Width,
		Height:  def.Height,
		Scale:   10,
		TPS:     60,
		Seed:    def.Seed,
		Density: def.Density,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "YAML config file; flags given explicitly override it")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.SimNames(), ", "))
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.IntVar(&c.Density, "density", c.Density, "percentage of cells seeded alive")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a built-in pattern instead of a random fill: "+strings.Join(life.BuiltinNames(), ", "))
}

// LoadFile reads YAML settings from path over the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	c.Path = path
	return nil
}

// Parse binds c to fs, parses args and, when -config names a file, loads it
// and then re-applies the flags that were given explicitly.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.Path == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.Path); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	return c.Validate()
}

// Validate reports settings no front end can run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// SimParams renders the settings as the string map registered factories read.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.Itoa(c.Density),
	}
}

type centeredStamper interface {
	StampCentered(p life.Pattern)
}

// NewSim looks up the configured simulation in the registry and seeds it:
// centred on Pattern when one is named, otherwise a random fill at Density.
// The pattern is resolved before the grid is allocated.
func (c *Config) NewSim() (Sim, error) {
	var pattern life.Pattern
	if c.Pattern != "" {
		p, err := life.Builtin(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(life.BuiltinNames(), ", "))
		}
		pattern = p
	}

	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSim, c.Sim, strings.Join(core.SimNames(), ", "))
	}
	created, err := factory(c.SimParams())
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.Sim, err)
	}
	sim, ok := created.(Sim)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support editing", ErrInvalidConfig, c.Sim)
	}

	if c.Pattern == "" {
		sim.Reset(c.Seed)
		return sim, nil
	}
	stamper, ok := sim.(centeredStamper)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support patterns", ErrInvalidConfig, c.Sim)
	}
	stamper.StampCentered(pattern)
	return sim, nil
}
