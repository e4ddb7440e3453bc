package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/ogimage/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(120, 63, color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 255})
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 120 || bounds.Dy() != 63 {
		t.Errorf("expected 120x63, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r1, _, _, _ := img.At(5, 5).RGBA()
	if r1>>8 != 0x12 {
		t.Errorf("expected background red 0x12, got %#x", r1>>8)
	}
}

func TestRenderer_NewWithFonts_InvalidData(t *testing.T) {
	_, err := NewWithFonts([]byte("not a font"), nil)
	if err == nil {
		t.Fatal("expected error for invalid font data")
	}
}

func TestRenderer_NewWithFonts_EmptyUsesEmbedded(t *testing.T) {
	r, err := NewWithFonts(nil, nil)
	if err != nil {
		t.Fatalf("NewWithFonts failed: %v", err)
	}
	if r.fonts.regular == nil || r.fonts.bold == nil {
		t.Error("expected embedded fonts to be loaded")
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if len(data) < 4 || string(data[:4]) != string(pngMagic) {
		t.Error("expected PNG signature")
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("expected JPEG SOI marker")
	}
}

func TestRenderer_EncodeUnsupported(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, err := r.EncodeImage(img, ports.ImageFormat(42), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 100, 40))

	resized := r.ResizeImage(img, 30, 30)

	bounds := resized.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawRect(10, 10, 30, 30, color.RGBA{R: 255, A: 255})

	img := canvas.ToImage()

	_, g, _, _ := img.At(20, 20).RGBA()
	if g != 0 {
		t.Error("expected red pixel inside rectangle")
	}
}

func TestCanvas_FillLinearGradient(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 10, color.Black)

	canvas.FillLinearGradient(0, 0, 100, 0, []ports.GradientStop{
		{Offset: 0, Color: color.RGBA{R: 255, A: 255}},
		{Offset: 1, Color: color.RGBA{B: 255, A: 255}},
	})

	img := canvas.ToImage()

	rl, _, bl, _ := img.At(1, 5).RGBA()
	rr, _, br, _ := img.At(98, 5).RGBA()
	if rl <= bl {
		t.Errorf("expected red to dominate on the left, got r=%d b=%d", rl, bl)
	}
	if br <= rr {
		t.Errorf("expected blue to dominate on the right, got r=%d b=%d", rr, br)
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.FillCircle(50, 50, 20, color.Black)

	img := canvas.ToImage()

	if r1, _, _, _ := img.At(50, 50).RGBA(); r1 != 0 {
		t.Error("expected black pixel at circle centre")
	}
	if r1, _, _, _ := img.At(5, 5).RGBA(); r1 != 0xffff {
		t.Error("expected white pixel outside circle")
	}
}

func TestCanvas_StrokeCircle(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.StrokeCircle(50, 50, 30, color.Black, 4)

	img := canvas.ToImage()

	if r1, _, _, _ := img.At(80, 50).RGBA(); r1 == 0xffff {
		t.Error("expected dark pixel on circle outline")
	}
	if r1, _, _, _ := img.At(50, 50).RGBA(); r1 != 0xffff {
		t.Error("expected white pixel inside stroked circle")
	}
}

func TestCanvas_ClipCircleRestore(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.Save()
	canvas.ClipCircle(50, 50, 10)
	canvas.DrawRect(0, 0, 100, 100, color.Black)
	canvas.Restore()

	img := canvas.ToImage()

	if r1, _, _, _ := img.At(50, 50).RGBA(); r1 != 0 {
		t.Error("expected black pixel inside clip circle")
	}
	if r1, _, _, _ := img.At(5, 5).RGBA(); r1 != 0xffff {
		t.Error("expected pixel outside clip circle to be untouched")
	}

	// Clip must not leak past Restore.
	canvas.DrawRect(0, 0, 10, 10, color.Black)
	if r1, _, _, _ := canvas.ToImage().At(5, 5).RGBA(); r1 != 0 {
		t.Error("expected clip to be removed after Restore")
	}
}

func TestCanvas_NestedClipRestore(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.Save()
	canvas.ClipCircle(50, 50, 40)
	canvas.Save()
	canvas.ClipCircle(50, 50, 10)
	canvas.Restore()

	// The outer clip still applies after the inner one is popped.
	canvas.DrawRect(0, 0, 100, 100, color.Black)
	img := canvas.ToImage()
	if r1, _, _, _ := img.At(50, 80).RGBA(); r1 != 0 {
		t.Error("expected outer clip to survive inner Restore")
	}
	if r1, _, _, _ := img.At(2, 2).RGBA(); r1 != 0xffff {
		t.Error("expected pixel outside outer clip to be untouched")
	}

	canvas.Restore()
	canvas.Restore() // unmatched, ignored
	canvas.StrokeCircle(50, 50, 48, color.Black, 4)
	if r1, _, _, _ := canvas.ToImage().At(98, 50).RGBA(); r1 == 0xffff {
		t.Error("expected stroke outside the former clip after Restore")
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	small := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			small.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	canvas.DrawImage(small, 10, 10)

	img := canvas.ToImage()

	_, g, _, _ := img.At(15, 15).RGBA()
	if g != 0 {
		t.Error("expected red pixel from drawn image")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawLine(0, 50, 100, 50, color.Black, 2)

	img := canvas.ToImage()

	r1, g1, b1, _ := img.At(50, 50).RGBA()
	if r1 == 65535 && g1 == 65535 && b1 == 65535 {
		t.Error("expected non-white pixel on line")
	}
}

func TestCanvas_DrawDashedLine(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 20, color.White)

	canvas.DrawDashedLine(0, 10, 100, 10, color.Black, 2, []float64{10, 5})

	img := canvas.ToImage()

	// First dash covers x in [0,10), first gap covers [10,15).
	if r1, _, _, _ := img.At(5, 10).RGBA(); r1 == 0xffff {
		t.Error("expected dash pixel to be drawn")
	}
	if r1, _, _, _ := img.At(12, 10).RGBA(); r1 != 0xffff {
		t.Error("expected gap pixel to stay white")
	}

	// Dash state must be reset afterwards.
	canvas.DrawLine(0, 15, 100, 15, color.Black, 2)
	if r1, _, _, _ := canvas.ToImage().At(12, 15).RGBA(); r1 == 0xffff {
		t.Error("expected solid line after dashed line")
	}
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 50, color.White)

	style := ports.TextStyle{
		FontSize: 24,
		Weight:   ports.WeightBold,
		Color:    color.Black,
		Align:    ports.AlignLeft,
	}

	canvas.DrawText("HELLO", 10, 35, style)

	img := canvas.ToImage()
	dark := false
	for y := 10; y < 36 && !dark; y++ {
		for x := 10; x < 100; x++ {
			if r1, _, _, _ := img.At(x, y).RGBA(); r1 < 0x8000 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("expected text pixels above the baseline")
	}
}

func TestCanvas_MeasureText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(10, 10, color.White)

	style := ports.TextStyle{FontSize: 20, Color: color.Black}

	short, _ := canvas.MeasureText("abc", style)
	long, _ := canvas.MeasureText("abc abc abc", style)
	if short <= 0 {
		t.Fatalf("expected positive width, got %f", short)
	}
	if long <= short {
		t.Errorf("expected longer text to be wider: %f <= %f", long, short)
	}

	larger, _ := canvas.MeasureText("abc", ports.TextStyle{FontSize: 40, Color: color.Black})
	if larger <= short {
		t.Errorf("expected larger font to be wider: %f <= %f", larger, short)
	}
}
