package formats

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mosaic/internal/core"
	"mosaic/internal/render"

	"github.com/klauspost/compress/zstd"
)

// rgbz is a zstd stream holding a 4-byte magic, the grid side as a big-endian
// uint32 and then the raw channel bytes in row-major order.
var rgbzMagic = [4]byte{'M', 'S', 'C', '1'}

// maxSide bounds the side a dump may declare.
const maxSide = 1 << 12

// ErrBadDump is returned for rgbz streams with a wrong header or short payload.
var ErrBadDump = errors.New("malformed rgbz dump")

type rgbzEncoder struct{}

func (rgbzEncoder) Ext() string { return "rgbz" }

func (rgbzEncoder) Encode(w io.Writer, g *core.ColorGrid) error {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)
	var header [8]byte
	copy(header[:4], rgbzMagic[:])
	binary.BigEndian.PutUint32(header[4:], uint32(g.N))
	if _, err := bw.Write(header[:]); err != nil {
		enc.Close()
		return err
	}
	for _, c := range g.Colors() {
		if _, err := bw.Write(c[:]); err != nil {
			enc.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// DecodeRGBZ reads a grid written by the rgbz encoder.
func DecodeRGBZ(r io.Reader) (*core.ColorGrid, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(8+3*maxSide*maxSide+1),
	)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var header [8]byte
	if _, err := io.ReadFull(dec, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", ErrBadDump)
	}
	if [4]byte(header[:4]) != rgbzMagic {
		return nil, fmt.Errorf("magic %q: %w", header[:4], ErrBadDump)
	}
	n := int(binary.BigEndian.Uint32(header[4:]))
	if n > maxSide {
		return nil, fmt.Errorf("side %d exceeds %d: %w", n, maxSide, ErrBadDump)
	}

	// The buffer grows only as decoded bytes arrive.
	want := 3 * n * n
	payload, err := io.ReadAll(io.LimitReader(dec, int64(want)+1))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", errors.Join(ErrBadDump, err))
	}
	if len(payload) != want {
		return nil, fmt.Errorf("payload %d bytes, want %d: %w", len(payload), want, ErrBadDump)
	}
	g := core.NewColorGrid(n)
	colors := g.Colors()
	for i := range colors {
		copy(colors[i][:], payload[3*i:3*i+3])
	}
	return g, nil
}

// DecodeFile reads a grid from an rgbz dump or any registered image format.
func DecodeFile(path string) (*core.ColorGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".rgbz") {
		return DecodeRGBZ(f)
	}
	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return render.GridFromImage(img), nil
}
