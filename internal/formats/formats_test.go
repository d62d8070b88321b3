package formats

import (
	"bytes"
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"testing"

	"mosaic/internal/core"
	"mosaic/internal/render"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func sampleGrid(n int) *core.ColorGrid {
	g := core.NewColorGrid(n)
	for i := range g.Colors() {
		g.Colors()[i] = core.Color{uint8(i * 7), uint8(i * 13), uint8(255 - i)}
	}
	return g
}

func TestEncodersRegistered(t *testing.T) {
	require.Equal(t, []string{"bmp", "png", "rgbz", "tiff"}, core.EncoderNames())
	for name, enc := range core.Encoders() {
		require.Equal(t, name, enc.Ext())
	}
}

func TestImageEncodersRoundTrip(t *testing.T) {
	g := sampleGrid(5)
	for _, name := range []string{"png", "bmp", "tiff"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, core.Encoders()[name].Encode(&buf, g))

			img, format, err := image.Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, name, format)
			require.Equal(t, g.Colors(), render.GridFromImage(img).Colors())
		})
	}
}

func TestRGBZRoundTrip(t *testing.T) {
	g := sampleGrid(9)
	var buf bytes.Buffer
	require.NoError(t, rgbzEncoder{}.Encode(&buf, g))

	back, err := DecodeRGBZ(&buf)
	require.NoError(t, err)
	require.Equal(t, 9, back.N)
	require.Equal(t, g.Colors(), back.Colors())
}

func TestRGBZEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rgbzEncoder{}.Encode(&buf, core.NewColorGrid(0)))
	back, err := DecodeRGBZ(&buf)
	require.NoError(t, err)
	require.Zero(t, back.N)
}

func TestRGBZRejectsTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rgbzEncoder{}.Encode(&buf, sampleGrid(4)))
	truncated := buf.Bytes()[:buf.Len()/2]

	_, err := DecodeRGBZ(bytes.NewReader(truncated))
	require.Error(t, err)
}

func rawRGBZ(t *testing.T, side uint32, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	header := append(rgbzMagic[:], 0, 0, 0, 0)
	binary.BigEndian.PutUint32(header[4:], side)
	_, err = enc.Write(append(header, payload...))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

func TestRGBZHeaderOnlyLargeSide(t *testing.T) {
	_, err := DecodeRGBZ(bytes.NewReader(rawRGBZ(t, maxSide, nil)))
	require.ErrorIs(t, err, ErrBadDump)
	require.ErrorContains(t, err, "payload 0 bytes")
}

func TestRGBZRejectsOversizedSide(t *testing.T) {
	_, err := DecodeRGBZ(bytes.NewReader(rawRGBZ(t, maxSide+1, nil)))
	require.ErrorIs(t, err, ErrBadDump)
	require.ErrorContains(t, err, "exceeds")
}

func TestRGBZRejectsTrailingBytes(t *testing.T) {
	_, err := DecodeRGBZ(bytes.NewReader(rawRGBZ(t, 1, []byte{1, 2, 3, 4})))
	require.ErrorIs(t, err, ErrBadDump)

	g, err := DecodeRGBZ(bytes.NewReader(rawRGBZ(t, 1, []byte{1, 2, 3})))
	require.NoError(t, err)
	require.Equal(t, []core.Color{{1, 2, 3}}, g.Colors())
}

func TestRGBZRejectsForeignStream(t *testing.T) {
	_, err := DecodeRGBZ(bytes.NewReader([]byte("definitely not zstd")))
	require.Error(t, err)
}

func TestDecodeFileByExtension(t *testing.T) {
	dir := t.TempDir()
	g := sampleGrid(6)
	for _, name := range []string{"png", "rgbz"} {
		path := filepath.Join(dir, "grid."+name)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, core.Encoders()[name].Encode(f, g))
		require.NoError(t, f.Close())

		back, err := DecodeFile(path)
		require.NoError(t, err)
		require.Equal(t, g.Colors(), back.Colors())
	}
}
