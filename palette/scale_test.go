package palette

import (
	"testing"

	"github.com/32bitkid/pixeldata"
)

func TestScale(t *testing.T) {
	pd := pixeldata.NewPixelData(2, 1)
	pd.Pixels[0] = 3

	img, err := Paletted(pd, DefaultPalettes.EGA)
	if err != nil {
		t.Fatal(err)
	}

	scaled := Scale(img, 3, 2)
	if b := scaled.Bounds(); b.Dx() != 6 || b.Dy() != 2 {
		t.Fatalf("expected(6x2) != actual(%dx%d)", b.Dx(), b.Dy())
	}

	ti := TransparentIndex(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			expected := uint8(3)
			if x >= 3 {
				expected = ti
			}
			if actual := scaled.ColorIndexAt(x, y); actual != expected {
				t.Fatalf("(%d,%d): expected(%d) != actual(%d)", x, y, expected, actual)
			}
		}
	}
}

func TestScaleMinimumFactor(t *testing.T) {
	img, err := Paletted(pixeldata.NewPixelData(4, 3), DefaultPalettes.DB32EGA)
	if err != nil {
		t.Fatal(err)
	}
	if b := Scale(img, 0, -1).Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("expected(4x3) != actual(%dx%d)", b.Dx(), b.Dy())
	}
}
