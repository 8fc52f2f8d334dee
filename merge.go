package pixeldata

import "fmt"

// MergeOptions controls how MergePixels composites. The zero value merges
// unflipped, unshifted, and skips transparent source cells.
type MergeOptions struct {
	FlipH bool
	// FlipV mirrors rows around the sample's width, not its height; the two
	// agree only for square samples. Rows mirrored outside dest are dropped.
	FlipV bool

	// ColorOffset is added to every written color reference. It is not
	// clamped to any palette.
	ColorOffset int

	// IncludeTransparent writes transparent source cells (shifted by
	// ColorOffset like any other) instead of skipping them.
	IncludeTransparent bool
}

// MergePixels composites the sampleWidth x sampleHeight rectangle of src at
// (sampleX, sampleY) onto dest at (destX, destY).
//
// The sample is clipped against dest only. Clipping the left or top edge
// shortens the sample without advancing sampleX or sampleY, so the sample's
// leading columns and rows are the ones drawn. The clipped sample must lie
// within src.
func MergePixels(src *PixelData, sampleX, sampleY, sampleWidth, sampleHeight int,
	dest *PixelData, destX, destY int, opts MergeOptions) error {
	if src == nil || dest == nil {
		return nilBuffer("merge")
	}

	destWidth, destHeight := dest.Width, dest.Height
	sampleWidth, sampleHeight, destX, destY = ValidateBounds(sampleWidth, sampleHeight, destWidth, destHeight, destX, destY)

	if sampleWidth <= 0 || sampleHeight <= 0 {
		Logger().Debug("pixeldata: merge clipped to nothing",
			"destX", destX, "destY", destY,
			"width", sampleWidth, "height", sampleHeight)
		return nil
	}

	if sampleX < 0 || sampleY < 0 || sampleX+sampleWidth > src.Width || sampleY+sampleHeight > src.Height {
		return &ConfigurationError{
			Op: "merge",
			Reason: fmt.Sprintf("sample %dx%d at (%d,%d) exceeds %dx%d source",
				sampleWidth, sampleHeight, sampleX, sampleY, src.Width, src.Height),
		}
	}

	var skipped int
	for row := 0; row < sampleHeight; row++ {
		srcOffset := sampleX + src.Width*(row+sampleY)

		y := row
		if opts.FlipV {
			y = sampleWidth - 1 - row
		}
		y += destY
		if y < 0 || y >= destHeight {
			skipped++
			continue
		}

		for col := 0; col < sampleWidth; col++ {
			pixel := src.Pixels[srcOffset+col]
			if pixel == Transparent && !opts.IncludeTransparent {
				continue
			}

			x := col
			if opts.FlipH {
				x = sampleWidth - 1 - col
			}

			dest.Pixels[(x+destX)+destWidth*y] = pixel + opts.ColorOffset
		}
	}

	if skipped > 0 {
		Logger().Debug("pixeldata: merge skipped rows mirrored outside destination",
			"rows", skipped, "width", sampleWidth, "height", sampleHeight)
	}
	return nil
}
