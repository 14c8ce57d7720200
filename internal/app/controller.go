package app

import (
	"time"

	"lifegrid/internal/core"
)

// Action is a user command understood by every front end.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionResume
	ActionStep
	ActionFill
	ActionReseed
	ActionClear
	ActionDensityUp
	ActionDensityDown
	ActionToggleHUD
	ActionQuit
)

// densityStep is the change applied by one density key press.
const densityStep = 5

// ActionForRune maps a typed character to its Action.
func ActionForRune(r rune) Action {
	switch r {
	case ' ':
		return ActionPause
	case 'n', 'N':
		return ActionStep
	case 'r', 'R':
		return ActionFill
	case 's', 'S':
		return ActionReseed
	case 'c', 'C':
		return ActionClear
	case '+', '=':
		return ActionDensityUp
	case '-', '_':
		return ActionDensityDown
	case 'h', 'H':
		return ActionToggleHUD
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Sim is what the controller drives: a registered simulation whose cells can
// be edited.
type Sim interface {
	core.Sim
	core.Editor
}

// Controller applies user actions and tick pacing to a simulation. It holds
// no locks: every call must come from the goroutine that owns the sim.
type Controller struct {
	sim      Sim
	seed     int64
	density  int
	paused   bool
	tickOnce bool
	hud      bool
	now      func() time.Time
}

// NewController wraps sim. seed and density are used by ActionFill and
// ActionReseed.
func NewController(sim Sim, seed int64, density int) *Controller {
	return &Controller{sim: sim, seed: seed, density: density, hud: true, now: time.Now}
}

// Sim returns the driven simulation.
func (c *Controller) Sim() Sim { return c.sim }

// Paused reports whether automatic ticking is suspended.
func (c *Controller) Paused() bool { return c.paused }

// HUDVisible reports whether the status panel should be drawn.
func (c *Controller) HUDVisible() bool { return c.hud }

// Density returns the fill percentage used by ActionFill.
func (c *Controller) Density() int { return c.density }

// Seed returns the seed of the latest reseed.
func (c *Controller) Seed() int64 { return c.seed }

// Apply performs a. It returns false when a asks to quit.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionPause:
		c.paused = !c.paused
	case ActionResume:
		c.paused = false
	case ActionStep:
		c.tickOnce = true
	case ActionFill:
		c.sim.Fill(c.density)
	case ActionReseed:
		c.seed = c.now().UnixNano()
		c.sim.Reset(c.seed)
	case ActionClear:
		c.sim.Clear()
	case ActionDensityUp:
		c.setDensity(c.density + densityStep)
	case ActionDensityDown:
		c.setDensity(c.density - densityStep)
	case ActionToggleHUD:
		c.hud = !c.hud
	case ActionQuit:
		return false
	}
	return true
}

// ApplyAll performs actions in order, stopping at the first one that asks to
// quit.
func (c *Controller) ApplyAll(actions []Action) bool {
	for _, a := range actions {
		if !c.Apply(a) {
			return false
		}
	}
	return true
}

func (c *Controller) setDensity(d int) {
	c.density = min(max(d, 0), 100)
	if setter, ok := c.sim.(core.IntParameterSetter); ok {
		setter.SetIntParameter("density", c.density)
	}
}

// Click toggles the cell under the pointer. Off-grid cells are ignored by the
// sim.
func (c *Controller) Click(x, y int) {
	c.sim.Toggle(x, y)
}

// Tick advances the sim once unless paused; a pending single step runs even
// while paused. It reports whether a generation was computed.
func (c *Controller) Tick() bool {
	if c.paused && !c.tickOnce {
		return false
	}
	c.sim.Step()
	c.tickOnce = false
	return true
}
