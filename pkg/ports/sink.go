package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SavePhoto saves the product photo as it was fetched and decoded.
	SavePhoto(img image.Image) error

	// SaveComposed saves the final surface before encoding.
	SaveComposed(img image.Image) error
}
