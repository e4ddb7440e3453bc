package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	// Each canvas owns its surface and drawing state; canvases are never shared.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// TextMeasurer reports the rendered size of text in a given style.
type TextMeasurer interface {
	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)
}

// Canvas provides drawing operations for composing an image.
type Canvas interface {
	TextMeasurer

	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// FillLinearGradient fills the whole surface with a linear gradient
	// running from (x0, y0) to (x1, y1).
	FillLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop)

	// FillCircle draws a filled circle.
	FillCircle(cx, cy, r float64, c color.Color)

	// StrokeCircle draws a circle outline.
	StrokeCircle(cx, cy, r float64, c color.Color, width float64)

	// DrawLine draws a solid line between two points.
	DrawLine(x1, y1, x2, y2 float64, c color.Color, width float64)

	// DrawDashedLine draws a line with the given on/off dash pattern.
	// The dash state does not outlive the call.
	DrawDashedLine(x1, y1, x2, y2 float64, c color.Color, width float64, dashes []float64)

	// DrawText draws text with its baseline at y.
	DrawText(text string, x, y int, style TextStyle)

	// Save pushes the current drawing state (clip region included).
	Save()

	// Restore pops the drawing state pushed by the last Save.
	Restore()

	// ClipCircle restricts subsequent drawing to a circle.
	ClipCircle(cx, cy, r float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// GradientStop is a color position along a gradient, offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	Weight   FontWeight
	Color    color.Color
	Align    TextAlign
}

// FontWeight selects the regular or bold font face.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// String returns the lowercase name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// MIMEType returns the media type of the format.
func (f ImageFormat) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// ParseImageFormat parses a format name. ok is false for unknown names.
func ParseImageFormat(s string) (format ImageFormat, ok bool) {
	switch s {
	case "png", "":
		return FormatPNG, true
	case "jpeg", "jpg":
		return FormatJPEG, true
	default:
		return ImageFormat(-1), false
	}
}
