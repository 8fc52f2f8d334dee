// Package palette resolves pixeldata buffers against concrete color palettes.
//
// Nothing here changes how pixeldata treats color references; it only gives
// them colors, for previews and for building palettes whose layout makes a
// merge's ColorOffset meaningful.
package palette

import (
	"fmt"
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/pixeldata"
)

func hexPalette(codes ...string) color.Palette {
	pal := make(color.Palette, len(codes))
	for i, code := range codes {
		c, err := clr.Hex(code)
		if err != nil {
			panic(err)
		}
		pal[i] = c
	}
	return pal
}

var DefaultPalettes = struct {
	EGA     color.Palette
	DB32EGA color.Palette
}{
	EGA: hexPalette(
		"#000000", "#0000aa", "#00aa00", "#00aaaa",
		"#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
		"#555555", "#5555ff", "#55ff55", "#55ffff",
		"#ff5555", "#ff55ff", "#ffff55", "#ffffff",
	),
	DB32EGA: hexPalette(
		"#000000", "#3f3f74", "#4b692f", "#306082",
		"#ac3232", "#45283c", "#8f563b", "#847e87",
		"#323c39", "#639bff", "#6abe30", "#5fcde4",
		"#d95763", "#d77bba", "#fbf236", "#ffffff",
	),
}

// Paletted renders pd as an image using pal. Color reference i becomes
// palette entry i; pixeldata.Transparent becomes an extra color.Transparent
// entry appended after pal, so pal may hold at most 255 colors.
func Paletted(pd *pixeldata.PixelData, pal color.Palette) (*image.Paletted, error) {
	if pd == nil {
		return nil, &pixeldata.ConfigurationError{Op: "paletted", Reason: "nil buffer"}
	}
	if len(pal) > 255 {
		return nil, fmt.Errorf("palette: %d colors leaves no room for transparency", len(pal))
	}

	p := make(color.Palette, len(pal), len(pal)+1)
	copy(p, pal)
	p = append(p, color.Transparent)
	transparent := uint8(len(pal))

	img := image.NewPaletted(image.Rect(0, 0, pd.Width, pd.Height), p)
	for i, c := range pd.Pixels {
		switch {
		case c == pixeldata.Transparent:
			img.Pix[i] = transparent
		case c < 0 || c >= len(pal):
			return nil, fmt.Errorf("palette: color reference %d at (%d,%d) outside %d-color palette",
				c, i%pd.Width, i/pd.Width, len(pal))
		default:
			img.Pix[i] = uint8(c)
		}
	}
	return img, nil
}

// TransparentIndex returns the index Paletted uses for transparency in img.
func TransparentIndex(img *image.Paletted) uint8 {
	return uint8(len(img.Palette) - 1)
}
