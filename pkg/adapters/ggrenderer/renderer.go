// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/ogimage/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
// A Renderer is safe for concurrent use; each canvas it creates is not.
type Renderer struct {
	fonts *fontSet
}

// New creates a new Renderer that draws text with the embedded Go fonts.
func New() *Renderer {
	fonts, err := newFontSet(nil, nil)
	if err != nil {
		// The embedded fonts are known to parse.
		panic(err)
	}
	return &Renderer{fonts: fonts}
}

// NewWithFonts creates a new Renderer from TrueType font data.
// A nil or empty slice selects the embedded Go font for that weight.
func NewWithFonts(regular, bold []byte) (*Renderer, error) {
	fonts, err := newFontSet(regular, bold)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts}, nil
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{
		dc:    dc,
		faces: newFaceCache(r.fonts),
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
//
// gg keeps the clip mask across Pop, so the canvas tracks its own clip
// stack and rebuilds the mask on Restore.
type Canvas struct {
	dc    *gg.Context
	faces *faceCache
	clips []circle
	saved [][]circle
}

type circle struct {
	cx, cy, r float64
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// FillLinearGradient fills the whole surface with a linear gradient.
func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []ports.GradientStop) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, s.Color)
	}

	c.dc.Push()
	defer c.dc.Pop()

	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.dc.Fill()
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

// StrokeCircle draws a circle outline.
func (c *Canvas) StrokeCircle(cx, cy, r float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Stroke()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// DrawDashedLine draws a dashed line and resets the dash pattern afterwards.
func (c *Canvas) DrawDashedLine(x1, y1, x2, y2 float64, col color.Color, width float64, dashes []float64) {
	c.dc.SetDash(dashes...)
	defer c.dc.SetDash()

	c.DrawLine(x1, y1, x2, y2, col, width)
}

// DrawText draws text with its baseline at y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.dc.SetFontFace(c.faces.get(style))
	c.dc.SetColor(style.Color)

	// Calculate alignment offset
	ax := 0.0
	switch style.Align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}

	c.dc.DrawStringAnchored(text, float64(x), float64(y), ax, 0)
}

// MeasureText returns the width and height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	c.dc.SetFontFace(c.faces.get(style))
	return c.dc.MeasureString(text)
}

// Save pushes the drawing state, including the clip region.
func (c *Canvas) Save() {
	c.dc.Push()
	c.saved = append(c.saved, append([]circle(nil), c.clips...))
}

// Restore pops the drawing state and the clip region saved with it.
// An unmatched Restore is a no-op.
func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.dc.Pop()

	n := len(c.saved) - 1
	c.clips = c.saved[n]
	c.saved = c.saved[:n]

	c.dc.ResetClip()
	for _, clip := range c.clips {
		c.applyClip(clip)
	}
}

// ClipCircle intersects the clip region with a circle.
func (c *Canvas) ClipCircle(cx, cy, r float64) {
	clip := circle{cx, cy, r}
	c.clips = append(c.clips, clip)
	c.applyClip(clip)
}

func (c *Canvas) applyClip(clip circle) {
	c.dc.ClearPath()
	c.dc.DrawCircle(clip.cx, clip.cy, clip.r)
	c.dc.Clip()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
