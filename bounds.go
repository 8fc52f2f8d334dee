package pixeldata

// Bounds is a clipped rectangle. Width or Height may be zero or negative when
// the requested rectangle missed its destination; see Empty.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether there is nothing to copy.
func (b Bounds) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// ValidateBounds clamps a sample of sampleWidth x sampleHeight anchored at
// (destX, destY) so that it lies within a destWidth x destHeight grid. Each
// edge is handled once: left, top, right, bottom.
//
// Trimming the left or top edge moves the origin to 0 and shortens the sample;
// it does not say which part of the source was cut. The returned width or
// height is <= 0 when the sample lies entirely outside the destination, and
// callers must treat that as empty.
func ValidateBounds(sampleWidth, sampleHeight, destWidth, destHeight, destX, destY int) (int, int, int, int) {
	if destX < 0 {
		sampleWidth += destX
		destX = 0
	}

	if destY < 0 {
		sampleHeight += destY
		destY = 0
	}

	if destX+sampleWidth > destWidth {
		sampleWidth -= (destX + sampleWidth) - destWidth
	}

	if destY+sampleHeight > destHeight {
		sampleHeight -= (destY + sampleHeight) - destHeight
	}

	return sampleWidth, sampleHeight, destX, destY
}

// Clip is ValidateBounds against pd's dimensions, returned as Bounds.
func Clip(pd *PixelData, x, y, width, height int) Bounds {
	w, h, cx, cy := ValidateBounds(width, height, pd.Width, pd.Height, x, y)
	return Bounds{X: cx, Y: cy, Width: w, Height: h}
}
