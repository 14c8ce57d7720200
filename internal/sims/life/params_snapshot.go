package life

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters reports the grid's configuration and run counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				int64Param("seed", "Seed", l.cfg.Seed),
				intParam("density", "Density", l.cfg.Density),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.Generation()),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

// SetIntParameter updates the seeding density. The value is clamped to
// [0,100]; it takes effect on the next Reset.
func (l *Life) SetIntParameter(key string, value int) bool {
	if key != "density" {
		return false
	}
	l.cfg.Density = min(max(value, 0), 100)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
