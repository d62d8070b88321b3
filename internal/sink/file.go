package sink

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"mosaic/internal/core"
)

// ErrUnknownFormat is returned when no encoder is registered for a format.
var ErrUnknownFormat = errors.New("unknown output format")

// Namer picks the file name for a grid of side n.
type Namer func(n int, ext string) string

// RandomName names files pic<n>-<random u32>.<ext>.
func RandomName(n int, ext string) string {
	return fmt.Sprintf("pic%d-%d.%s", n, rand.Uint32(), ext)
}

// SeedName names files pic<n>-s<seed>.<ext>, so reruns overwrite each other.
func SeedName(seed int64) Namer {
	return func(n int, ext string) string {
		return fmt.Sprintf("pic%d-s%d.%s", n, seed, ext)
	}
}

// File writes finished grids into a directory. It is safe for concurrent use
// as long as Name is.
type File struct {
	Dir     string
	Encoder core.Encoder
	Name    Namer
}

// New returns a File sink encoding with the registered format.
func New(dir, format string, name Namer) (*File, error) {
	enc, ok := core.Encoders()[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%q (have %s): %w", format, strings.Join(core.EncoderNames(), ", "), ErrUnknownFormat)
	}
	if name == nil {
		name = RandomName
	}
	if dir == "" {
		dir = "."
	}
	return &File{Dir: dir, Encoder: enc, Name: name}, nil
}

// Save encodes g into a new file and returns its path. The file appears
// under its final name only once it is completely written.
func (f *File) Save(g *core.ColorGrid) (string, error) {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(f.Dir, f.Name(g.N, f.Encoder.Ext()))

	tmp, err := os.CreateTemp(f.Dir, ".mosaic-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := f.Encoder.Encode(tmp, g); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode %s: %w", f.Encoder.Ext(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	return path, nil
}
