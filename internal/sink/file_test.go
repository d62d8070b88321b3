package sink

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"mosaic/internal/core"
	"mosaic/internal/formats"

	"github.com/stretchr/testify/require"
)

type failingEncoder struct{}

func (failingEncoder) Ext() string { return "bad" }

func (failingEncoder) Encode(io.Writer, *core.ColorGrid) error { return errors.New("boom") }

func TestRandomName(t *testing.T) {
	require.Regexp(t, regexp.MustCompile(`^pic12-\d+\.png$`), RandomName(12, "png"))
	require.Equal(t, "pic3-s42.tiff", SeedName(42)(3, "tiff"))
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(t.TempDir(), "gif", nil)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSaveWritesDecodableFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s, err := New(dir, "RGBZ", SeedName(7))
	require.NoError(t, err)

	g := core.NewColorGrid(3)
	g.Set(2, 1, core.Color{90, 80, 70})
	path, err := s.Save(g)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "pic3-s7.rgbz"), path)

	back, err := formats.DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, g.Colors(), back.Colors())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSaveEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	s := &File{Dir: dir, Encoder: failingEncoder{}, Name: SeedName(1)}
	_, err := s.Save(core.NewColorGrid(2))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
