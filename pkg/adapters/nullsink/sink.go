// Package nullsink provides a debug sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/ogimage/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false, so callers skip preparing debug images.
func (*Sink) Enabled() bool { return false }

func (*Sink) SavePhoto(image.Image) error    { return nil }
func (*Sink) SaveComposed(image.Image) error { return nil }

var _ ports.DebugSink = (*Sink)(nil)
