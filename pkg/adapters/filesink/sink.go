// Package filesink writes intermediate card images to a debug directory.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/ogimage/pkg/ports"
)

const (
	photoFile    = "photo.png"
	composedFile = "composed.png"
)

// Sink saves debug output as PNG files under baseDir.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePhoto saves the decoded product photo before it is resized.
func (s *Sink) SavePhoto(img image.Image) error {
	return s.savePNG(photoFile, img)
}

// SaveComposed saves the finished surface before output encoding.
func (s *Sink) SaveComposed(img image.Image) error {
	return s.savePNG(composedFile, img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

var _ ports.DebugSink = (*Sink)(nil)
