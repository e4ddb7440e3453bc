package mocks

import (
	"image"
	"image/color"
	"sync"
	"unicode/utf8"

	"github.com/user/ogimage/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	mu sync.Mutex

	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	// Canvases records every canvas created by the default CreateCanvas.
	Canvases []*Canvas
	// EncodeCalls records the format of every EncodeImage call.
	EncodeCalls []ports.ImageFormat
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := NewCanvas(width, height, bg)
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.EncodeCalls = append(m.EncodeCalls, format)
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// LastCanvas returns the most recently created canvas, or nil.
func (m *Renderer) LastCanvas() *Canvas {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Canvases) == 0 {
		return nil
	}
	return m.Canvases[len(m.Canvases)-1]
}

var _ ports.Renderer = (*Renderer)(nil)

// CanvasCall records one drawing operation.
type CanvasCall struct {
	Method string

	X, Y   float64
	X2, Y2 float64
	W, H   float64
	R      float64

	Color     color.Color
	LineWidth float64
	Dashes    []float64
	Stops     []ports.GradientStop
	Text      string
	Style     ports.TextStyle
	Image     image.Image

	// Clipped reports whether a clip region was active.
	Clipped bool
}

// Canvas is a mock implementation of ports.Canvas that records drawing calls.
// Text is measured as FontSize/2 per rune unless MeasureTextFunc is set.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color

	MeasureTextFunc func(text string, style ports.TextStyle) (float64, float64)

	Calls []CanvasCall

	clipped bool
	stack   []bool
	img     *image.RGBA
}

// NewCanvas creates a recording canvas.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	return &Canvas{Width: width, Height: height, Background: bg}
}

func (m *Canvas) record(c CanvasCall) {
	c.Clipped = m.clipped
	m.Calls = append(m.Calls, c)
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.record(CanvasCall{Method: "DrawImage", X: float64(x), Y: float64(y), W: float64(b.Dx()), H: float64(b.Dy()), Image: img})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.record(CanvasCall{Method: "DrawRect", X: float64(x), Y: float64(y), W: float64(w), H: float64(h), Color: c})
}

func (m *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []ports.GradientStop) {
	m.record(CanvasCall{Method: "FillLinearGradient", X: x0, Y: y0, X2: x1, Y2: y1, Stops: stops})
}

func (m *Canvas) FillCircle(cx, cy, r float64, c color.Color) {
	m.record(CanvasCall{Method: "FillCircle", X: cx, Y: cy, R: r, Color: c})
}

func (m *Canvas) StrokeCircle(cx, cy, r float64, c color.Color, width float64) {
	m.record(CanvasCall{Method: "StrokeCircle", X: cx, Y: cy, R: r, Color: c, LineWidth: width})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	m.record(CanvasCall{Method: "DrawLine", X: x1, Y: y1, X2: x2, Y2: y2, Color: c, LineWidth: width})
}

func (m *Canvas) DrawDashedLine(x1, y1, x2, y2 float64, c color.Color, width float64, dashes []float64) {
	m.record(CanvasCall{Method: "DrawDashedLine", X: x1, Y: y1, X2: x2, Y2: y2, Color: c, LineWidth: width, Dashes: dashes})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.record(CanvasCall{Method: "DrawText", X: float64(x), Y: float64(y), Text: text, Style: style, Color: style.Color})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	if m.MeasureTextFunc != nil {
		return m.MeasureTextFunc(text, style)
	}
	return float64(utf8.RuneCountInString(text)) * style.FontSize / 2, style.FontSize
}

func (m *Canvas) Save() {
	m.stack = append(m.stack, m.clipped)
	m.record(CanvasCall{Method: "Save"})
}

func (m *Canvas) Restore() {
	if n := len(m.stack); n > 0 {
		m.clipped = m.stack[n-1]
		m.stack = m.stack[:n-1]
	}
	m.record(CanvasCall{Method: "Restore"})
}

func (m *Canvas) ClipCircle(cx, cy, r float64) {
	m.record(CanvasCall{Method: "ClipCircle", X: cx, Y: cy, R: r})
	m.clipped = true
}

func (m *Canvas) ToImage() image.Image {
	if m.img == nil {
		m.img = image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	}
	return m.img
}

// CallsOf returns the recorded calls of one method, in order.
func (m *Canvas) CallsOf(method string) []CanvasCall {
	var out []CanvasCall
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the text of every DrawText call, in order.
func (m *Canvas) Texts() []string {
	var out []string
	for _, c := range m.CallsOf("DrawText") {
		out = append(out, c.Text)
	}
	return out
}

// FindText returns the first DrawText call with the given text.
func (m *Canvas) FindText(text string) (CanvasCall, bool) {
	for _, c := range m.CallsOf("DrawText") {
		if c.Text == text {
			return c, true
		}
	}
	return CanvasCall{}, false
}

// Depth returns the number of unmatched Save calls.
func (m *Canvas) Depth() int {
	return len(m.stack)
}

var _ ports.Canvas = (*Canvas)(nil)
