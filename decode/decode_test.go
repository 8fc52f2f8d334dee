package decode

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/32bitkid/pixeldata"
)

const T = pixeldata.Transparent

func checkPixels(t *testing.T, expected []int, pd *pixeldata.PixelData) {
	t.Helper()
	if len(expected) != len(pd.Pixels) {
		t.Fatalf("expected(%d) != actual(%d) pixels", len(expected), len(pd.Pixels))
	}
	for i := range expected {
		if expected[i] != pd.Pixels[i] {
			t.Fatalf("expected(%v) != actual(%v)", expected, pd.Pixels)
		}
	}
}

func TestRLE(t *testing.T) {
	data := []byte{
		0x31, // 3 x color 1
		0x00, // empty run
		0x25, // 2 x color 5
		0x1f, // 1 x color 15 (key)
	}
	pd, err := RLE(data, 3, 2, Options{KeyColor: 15})
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, []int{1, 1, 1, 5, 5, T}, pd)
}

func TestRLEOverflowingRun(t *testing.T) {
	pd, err := RLE([]byte{0xf7}, 2, 2, Options{KeyColor: NoKey})
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, []int{7, 7, 7, 7}, pd)
}

func TestRLETruncated(t *testing.T) {
	_, err := RLE([]byte{0x21}, 2, 2, Options{KeyColor: NoKey})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestRLEMirrored(t *testing.T) {
	data := []byte{0x11, 0x12, 0x10, 0x13, 0x14, 0x15}
	pd, err := RLE(data, 3, 2, Options{KeyColor: 0, Mirrored: true})
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, []int{T, 2, 1, 5, 4, 3}, pd)
}

func TestRLEBadSize(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, -1}, {4096, 1}} {
		_, err := RLE(nil, size[0], size[1], Options{})
		var cfgErr *pixeldata.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%v: expected ConfigurationError, got %v", size, err)
		}
	}
}

func TestPacked(t *testing.T) {
	type packedTestCase struct {
		bpp      uint
		data     []byte
		expected []int
	}

	cases := []packedTestCase{
		{1, []byte{0xa0}, []int{1, 0, 1, 0}},
		{2, []byte{0x1b}, []int{0, 1, 2, 3}},
		{4, []byte{0x3f, 0x0c}, []int{3, T, 0, 12}},
		{8, []byte{0x00, 0x0f, 0xff, 0x10}, []int{0, T, 255, 16}},
		{12, []byte{0x00, 0x10, 0x02, 0xff, 0xff, 0xff}, []int{1, 2, 4095, 4095}},
	}

	for _, c := range cases {
		pd, err := Packed(bytes.NewReader(c.data), 2, 2, c.bpp, Options{KeyColor: 15})
		if err != nil {
			t.Fatalf("%d bpp: %v", c.bpp, err)
		}
		checkPixels(t, c.expected, pd)
	}
}

func TestPackedUnsupportedDepth(t *testing.T) {
	for _, bpp := range []uint{0, 17, 32} {
		_, err := Packed(bytes.NewReader(nil), 1, 1, bpp, Options{})
		var cfgErr *pixeldata.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%d bpp: expected ConfigurationError, got %v", bpp, err)
		}
	}
}

func TestPackedTruncated(t *testing.T) {
	_, err := Packed(bytes.NewReader([]byte{0x12}), 2, 2, 8, Options{KeyColor: NoKey})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestNewCel(t *testing.T) {
	b := []byte{
		0x02, 0x00, // width 2
		0x01, 0x00, // height 1
		0xfd,       // x -3
		0x04,       // y 4
		0x09,       // key color 9
		0x19, 0x16, // body
	}

	cel, err := NewCel(b, false)
	if err != nil {
		t.Fatal(err)
	}
	if cel.X != -3 || cel.Y != 4 {
		t.Fatalf("expected(-3,4) != actual(%d,%d)", cel.X, cel.Y)
	}
	checkPixels(t, []int{T, 6}, cel.PixelData)

	mirrored, err := NewCel(b, true)
	if err != nil {
		t.Fatal(err)
	}
	if mirrored.X != 3 {
		t.Fatalf("expected(3) != actual(%d)", mirrored.X)
	}
	checkPixels(t, []int{6, T}, mirrored.PixelData)
}

func TestNewCelShortHeader(t *testing.T) {
	if _, err := NewCel([]byte{0x01, 0x00}, false); err == nil {
		t.Fatal("expected error for short header")
	}
}
