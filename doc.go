// Package pixeldata implements clipping, region copy, and compositing of
// palette-indexed pixel buffers.
//
// A PixelData is a row-major grid of color references. Every color reference
// is an opaque palette index except for Transparent (-1), which marks a cell
// with no pixel. Negative values other than -1 are ordinary indices.
//
// All geometry is clamped rather than rejected: a rectangle that hangs off an
// edge is trimmed, and one that misses the buffer entirely becomes a no-op.
// Functions keep no state between calls and may run concurrently on disjoint
// buffers; callers serialize writers to the same buffer.
package pixeldata
