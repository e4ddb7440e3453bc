package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/ogimage/pkg/mocks"
	"github.com/user/ogimage/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveImages(t *testing.T) {
	tests := []struct {
		name string
		save func(*Sink, image.Image) error
		file string
	}{
		{"photo", (*Sink).SavePhoto, "photo.png"},
		{"composed", (*Sink).SaveComposed, "composed.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			renderer := &mocks.Renderer{}
			sink := New(testBaseDir, fs, renderer)

			if err := tt.save(sink, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			path := filepath.Join(testBaseDir, tt.file)
			if _, ok := fs.GetFile(path); !ok {
				t.Errorf("expected file at %s", path)
			}
			if len(renderer.EncodeCalls) != 1 || renderer.EncodeCalls[0] != ports.FormatPNG {
				t.Errorf("expected one PNG encode, got %v", renderer.EncodeCalls)
			}
		})
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("encode failed")
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveComposed(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error")
	}
	if len(fs.Paths()) != 0 {
		t.Error("expected nothing written on encode failure")
	}
}
