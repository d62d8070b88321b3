package core

import (
	"fmt"
	"io"
	"sort"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Position addresses a cell on the torus.
type Position struct {
	X int
	Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Sim defines the incremental contract the preview window drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Done() bool
	Canvas() *Canvas
}

// Encoder serializes a finished grid into one file format.
type Encoder interface {
	Ext() string
	Encode(w io.Writer, g *ColorGrid) error
}

var encoders = map[string]Encoder{}

// RegisterEncoder adds an encoder under the provided format name.
func RegisterEncoder(name string, e Encoder) {
	if name == "" || e == nil {
		return
	}
	encoders[name] = e
}

// Encoders exposes the registry of available encoders.
func Encoders() map[string]Encoder {
	return encoders
}

// EncoderNames lists registered format names in sorted order.
func EncoderNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
