package core

import "strconv"

// Parameter describes a single value exposed by a painting for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a painting.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their state.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam builds an integer-valued parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// Int64Param builds a 64-bit integer parameter.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating point parameter with fixed precision.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}

// Lookup returns the parameter with the given key, if present.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
