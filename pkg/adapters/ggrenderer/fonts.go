package ggrenderer

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/ogimage/pkg/ports"
)

// fontSet holds the parsed fonts shared by every canvas of a renderer.
// Parsed fonts are read-only; faces are not and live in a faceCache.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

func newFontSet(regular, bold []byte) (*fontSet, error) {
	r, err := parseFont(regular, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	b, err := parseFont(bold, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &fontSet{regular: r, bold: b}, nil
}

type faceKey struct {
	weight ports.FontWeight
	size   float64
}

// faceCache creates font faces on demand for one canvas.
type faceCache struct {
	fonts *fontSet
	faces map[faceKey]font.Face
}

func newFaceCache(fonts *fontSet) *faceCache {
	return &faceCache{
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}
}

func (fc *faceCache) get(style ports.TextStyle) font.Face {
	key := faceKey{weight: style.Weight, size: style.FontSize}
	if face, ok := fc.faces[key]; ok {
		return face
	}

	f := fc.fonts.regular
	if style.Weight == ports.WeightBold {
		f = fc.fonts.bold
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    style.FontSize,
		Hinting: font.HintingFull,
	})
	fc.faces[key] = face
	return face
}

// parseFont parses TrueType data, falling back to def when data is empty.
func parseFont(data, def []byte) (*truetype.Font, error) {
	if len(data) == 0 {
		data = def
	}
	return truetype.Parse(data)
}
