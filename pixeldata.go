package pixeldata

// Transparent is the reserved color reference for "no pixel". It is the only
// value the compositor treats specially.
const Transparent = -1

const (
	MinSize = 1
	MaxSize = 2048
)

// IsTransparent reports whether c is the transparent sentinel.
func IsTransparent(c int) bool { return c == Transparent }

// PixelData is a rectangular grid of color references stored row-major:
// cell (x, y) lives at Pixels[x+y*Width] and len(Pixels) == Width*Height.
type PixelData struct {
	Width  int
	Height int
	Pixels []int
}

// NewPixelData allocates a buffer with both dimensions clamped to
// [MinSize, MaxSize], filled with Transparent.
func NewPixelData(width, height int) *PixelData {
	pd := &PixelData{}
	pd.Resize(clamp(width, MinSize, MaxSize), clamp(height, MinSize, MaxSize))
	pd.Fill(Transparent)
	return pd
}

// TotalPixels returns Width*Height.
func (pd *PixelData) TotalPixels() int { return pd.Width * pd.Height }

// Resize reallocates the backing storage for the new dimensions. Existing
// content is discarded; new cells are zero. Dimensions are taken as given,
// see the package-level Resize for the clamped, cleared variant.
func (pd *PixelData) Resize(width, height int) {
	pd.Width, pd.Height = width, height
	pd.Pixels = make([]int, width*height)
}

// Fill sets every cell to colorRef.
func (pd *PixelData) Fill(colorRef int) {
	for i, max := 0, len(pd.Pixels); i < max; i++ {
		pd.Pixels[i] = colorRef
	}
}

// At returns the color reference at (x, y), or Transparent outside the grid.
func (pd *PixelData) At(x, y int) int {
	if x < 0 || y < 0 || x >= pd.Width || y >= pd.Height {
		return Transparent
	}
	return pd.Pixels[x+y*pd.Width]
}

// Set writes colorRef at (x, y). Writes outside the grid are ignored.
func (pd *PixelData) Set(x, y int, colorRef int) {
	if x < 0 || y < 0 || x >= pd.Width || y >= pd.Height {
		return
	}
	pd.Pixels[x+y*pd.Width] = colorRef
}

// Clear overwrites every cell of pd with colorRef. Pass Transparent for the
// conventional empty buffer.
func Clear(pd *PixelData, colorRef int) error {
	if pd == nil {
		return nilBuffer("clear")
	}
	pd.Fill(colorRef)
	return nil
}

// Resize clamps width and height to [MinSize, MaxSize], reallocates pd, and
// clears it to Transparent. Previous content is never preserved.
func Resize(pd *PixelData, width, height int) error {
	if pd == nil {
		return nilBuffer("resize")
	}

	w, h := clamp(width, MinSize, MaxSize), clamp(height, MinSize, MaxSize)
	if w != width || h != height {
		Logger().Debug("pixeldata: resize clamped",
			"width", width, "height", height,
			"clampedWidth", w, "clampedHeight", h)
	}

	pd.Resize(w, h)
	pd.Fill(Transparent)
	return nil
}

func clamp(i int, min int, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
