package core

import "strings"

// ParamType enumerates supported parameter value kinds.
type ParamType string

// ParamTypeInt denotes integer-valued parameters.
const ParamTypeInt ParamType = "int"

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines renders the snapshot as one "Group: Label value, ..." line per group.
func (s ParameterSnapshot) Lines() []string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		var b strings.Builder
		b.WriteString(g.Name)
		b.WriteString(":")
		for i, p := range g.Params {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			b.WriteString(p.Label)
			b.WriteString(" ")
			b.WriteString(p.Value)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// ParameterProvider is implemented by sims that publish a parameter snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows front-end interactions to update integer
// parameters. It reports whether the key was recognised.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
