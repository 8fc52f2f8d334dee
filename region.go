package pixeldata

// Region copy moves rectangles between a buffer and a flat caller array. The
// array is row-major with blockWidth as its stride, and array cell
// (i, j) always pairs with buffer cell (x+i, y+j) for the requested x, y.
// Clipping only decides which pairs exist; it never shifts them.

// GetPixels returns a copy of every cell in pd, or nil for a nil buffer.
func GetPixels(pd *PixelData) []int {
	if pd == nil {
		return nil
	}
	pixels := make([]int, len(pd.Pixels))
	copy(pixels, pd.Pixels)
	return pixels
}

// GetPixelsRect returns the blockWidth x blockHeight rectangle at (x, y).
// Cells that fall outside pd are Transparent.
func GetPixelsRect(pd *PixelData, x, y, blockWidth, blockHeight int) ([]int, error) {
	if err := checkBlock("read", blockWidth, blockHeight); err != nil {
		return nil, err
	}

	pixels := make([]int, blockWidth*blockHeight)
	for i := range pixels {
		pixels[i] = Transparent
	}

	if err := CopyPixels(pixels, pd, x, y, blockWidth, blockHeight); err != nil {
		return nil, err
	}
	return pixels, nil
}

// CopyPixels copies the blockWidth x blockHeight rectangle at (x, y) of pd
// into dst. Cells of dst whose source lies outside pd are left as they were.
// Clipped rows keep blockWidth as their stride rather than being packed at
// the clipped width.
func CopyPixels(dst []int, pd *PixelData, x, y, blockWidth, blockHeight int) error {
	if pd == nil {
		return nilBuffer("read")
	}
	if err := checkBlock("read", blockWidth, blockHeight); err != nil {
		return err
	}
	if err := checkArray("read", len(dst), blockWidth, blockHeight); err != nil {
		return err
	}

	b := Clip(pd, x, y, blockWidth, blockHeight)
	if b.Empty() {
		Logger().Debug("pixeldata: read clipped to nothing",
			"x", x, "y", y, "width", blockWidth, "height", blockHeight)
		return nil
	}

	offset := (b.X - x) + (b.Y-y)*blockWidth
	for i := 0; i < b.Height; i++ {
		from := b.X + (b.Y+i)*pd.Width
		to := offset + i*blockWidth
		copy(dst[to:to+b.Width], pd.Pixels[from:from+b.Width])
	}
	return nil
}

// SetPixels overwrites all of pd from pixels, which must hold at least
// Width*Height cells.
func SetPixels(pixels []int, pd *PixelData) error {
	if pd == nil {
		return nilBuffer("write")
	}
	return SetPixelsRect(pd, 0, 0, pd.Width, pd.Height, pixels)
}

// SetPixelsRect writes the blockWidth x blockHeight array src into pd at
// (x, y). Parts of the block outside pd are dropped.
func SetPixelsRect(pd *PixelData, x, y, blockWidth, blockHeight int, src []int) error {
	if pd == nil {
		return nilBuffer("write")
	}
	if err := checkBlock("write", blockWidth, blockHeight); err != nil {
		return err
	}
	if err := checkArray("write", len(src), blockWidth, blockHeight); err != nil {
		return err
	}

	b := Clip(pd, x, y, blockWidth, blockHeight)
	if b.Empty() {
		Logger().Debug("pixeldata: write clipped to nothing",
			"x", x, "y", y, "width", blockWidth, "height", blockHeight)
		return nil
	}

	offset := (b.X - x) + (b.Y-y)*blockWidth
	for i := 0; i < b.Height; i++ {
		from := offset + i*blockWidth
		to := b.X + (b.Y+i)*pd.Width
		copy(pd.Pixels[to:to+b.Width], src[from:from+b.Width])
	}
	return nil
}
