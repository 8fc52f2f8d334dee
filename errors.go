package pixeldata

import (
	"fmt"
	"math"
)

// ConfigurationError reports input that no amount of clamping can make
// meaningful: a nil buffer, a negative block size, or a caller array too
// short for the block it describes. Out-of-range coordinates are never a
// ConfigurationError; they are clipped.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pixeldata: %s: %s", e.Op, e.Reason)
}

func nilBuffer(op string) error {
	return &ConfigurationError{Op: op, Reason: "nil buffer"}
}

func checkBlock(op string, blockWidth, blockHeight int) error {
	if blockWidth < 0 || blockHeight < 0 {
		return &ConfigurationError{
			Op:     op,
			Reason: fmt.Sprintf("negative block size %dx%d", blockWidth, blockHeight),
		}
	}
	if blockHeight != 0 && blockWidth > math.MaxInt/blockHeight {
		return &ConfigurationError{
			Op:     op,
			Reason: fmt.Sprintf("block size %dx%d overflows", blockWidth, blockHeight),
		}
	}
	return nil
}

func checkArray(op string, n, blockWidth, blockHeight int) error {
	if need := blockWidth * blockHeight; n < need {
		return &ConfigurationError{
			Op:     op,
			Reason: fmt.Sprintf("array holds %d cells, block %dx%d needs %d", n, blockWidth, blockHeight, need),
		}
	}
	return nil
}
