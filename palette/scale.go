package palette

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges img by whole factors with nearest-neighbour sampling. The
// result shares img's palette. Factors below 1 are treated as 1.
func Scale(img *image.Paletted, sx, sy int) *image.Paletted {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}

	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*sx, b.Dy()*sy), img.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
