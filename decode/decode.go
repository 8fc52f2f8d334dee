// Package decode unpacks palette-indexed cel data held in memory into
// pixeldata buffers.
//
// Two encodings are understood: the 16-color nibble run-length stream used by
// view cels, and plain fixed-depth packed indices. In both, the cel's key
// color becomes pixeldata.Transparent.
package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/pixeldata"
)

// Options controls how decoded indices are stored.
type Options struct {
	// KeyColor is the index stored as pixeldata.Transparent. A value the
	// stream cannot produce, such as NoKey, keeps every index.
	KeyColor int
	// Mirrored flips the cel horizontally after decoding.
	Mirrored bool
}

// NoKey disables key color mapping.
const NoKey = pixeldata.Transparent

// CelHeader is the 7-byte little-endian header preceding a view cel.
type CelHeader struct {
	Width    uint16
	Height   uint16
	X        int8
	Y        uint8
	KeyColor uint8
}

// Cel is a decoded view cel and its placement offset.
type Cel struct {
	X, Y int
	*pixeldata.PixelData
}

// NewCel decodes a header followed by a run-length body. Mirrored cels also
// negate their X offset.
func NewCel(b []byte, mirrored bool) (Cel, error) {
	r := bytes.NewReader(b)

	var header CelHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return Cel{}, fmt.Errorf("decode: cel header: %w", err)
	}

	pd, err := RLE(b[len(b)-r.Len():], int(header.Width), int(header.Height), Options{
		KeyColor: int(header.KeyColor),
		Mirrored: mirrored,
	})
	if err != nil {
		return Cel{}, err
	}

	x := int(header.X)
	if mirrored {
		x = -x
	}
	return Cel{X: x, Y: int(header.Y), PixelData: pd}, nil
}

// RLE decodes a nibble run-length stream into a width x height buffer. Each
// byte holds a repeat count in its high nibble and a color in its low nibble.
// Runs that would overflow the cel are cut short.
func RLE(data []byte, width, height int, opts Options) (*pixeldata.PixelData, error) {
	if err := checkSize("rle", width, height); err != nil {
		return nil, err
	}

	pd := pixeldata.NewPixelData(width, height)
	br := bitreader.NewReader(bytes.NewReader(data))

	total := pd.TotalPixels()
	i := 0
	for i < total {
		repeat, err := br.Read8(4)
		if err != nil {
			return nil, truncated(err, i, total)
		}
		color, err := br.Read8(4)
		if err != nil {
			return nil, truncated(err, i, total)
		}

		c := key(int(color), opts.KeyColor)
		for r := 0; r < int(repeat) && i < total; r++ {
			pd.Pixels[i] = c
			i++
		}
	}

	return finish(pd, opts)
}

// Packed reads width*height indices of bpp bits each, most significant bit
// first, from r.
func Packed(r io.Reader, width, height int, bpp uint, opts Options) (*pixeldata.PixelData, error) {
	if err := checkSize("packed", width, height); err != nil {
		return nil, err
	}
	if bpp < 1 || bpp > 16 {
		return nil, &pixeldata.ConfigurationError{
			Op:     "decode packed",
			Reason: fmt.Sprintf("unsupported depth %d bpp", bpp),
		}
	}

	pd := pixeldata.NewPixelData(width, height)
	br := bitreader.NewReader(r)

	for i, total := 0, pd.TotalPixels(); i < total; i++ {
		v, err := br.Read32(bpp)
		if err != nil {
			return nil, truncated(err, i, total)
		}
		pd.Pixels[i] = key(int(v), opts.KeyColor)
	}

	return finish(pd, opts)
}

func key(c, keyColor int) int {
	if c == keyColor {
		return pixeldata.Transparent
	}
	return c
}

func finish(pd *pixeldata.PixelData, opts Options) (*pixeldata.PixelData, error) {
	if !opts.Mirrored {
		return pd, nil
	}

	mirrored := pixeldata.NewPixelData(pd.Width, pd.Height)
	err := pixeldata.MergePixels(pd, 0, 0, pd.Width, pd.Height, mirrored, 0, 0, pixeldata.MergeOptions{
		FlipH:              true,
		IncludeTransparent: true,
	})
	if err != nil {
		return nil, err
	}
	return mirrored, nil
}

func checkSize(op string, width, height int) error {
	if width < pixeldata.MinSize || height < pixeldata.MinSize ||
		width > pixeldata.MaxSize || height > pixeldata.MaxSize {
		return &pixeldata.ConfigurationError{
			Op:     "decode " + op,
			Reason: fmt.Sprintf("cel size %dx%d out of range", width, height),
		}
	}
	return nil
}

func truncated(err error, decoded, total int) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	pixeldata.Logger().Debug("decode: stream ended early", "decoded", decoded, "total", total)
	return fmt.Errorf("decode: %d of %d pixels: %w", decoded, total, err)
}
