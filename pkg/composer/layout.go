package composer

import (
	"image/color"

	"github.com/user/ogimage/pkg/ports"
)

// Surface size of a generated card.
const (
	Width  = 1200
	Height = 630
)

// Logo block.
const (
	BrandName    = "NINO KARTSIVADZE"
	BrandTagline = "CLOISONNE ENAMEL"
	logoX        = 60
	brandY       = 80
	taglineY     = 110
)

// Product photo circle: a PhotoSize square at the right edge, vertically centred.
const (
	PhotoSize        = 300
	PhotoMargin      = 60
	PhotoBorderWidth = 4
	PlaceholderLabel = "Product Image"
)

// Text block, relative to (TextX, TextY).
const (
	TextX            = 60
	TextY            = 200
	MaxTextWidth     = 600
	titleLineHeight  = 45
	descOffset       = 120
	descLineHeight   = 30
	priceOffset      = 300
	categoryOffset   = 350
	DescriptionLimit = 200
	Ellipsis         = "..."
)

// Decorations.
const (
	DecorationDots  = 20
	dotMinRadius    = 2
	dotRadiusRange  = 4
	dividerX1       = 60
	dividerX2       = 400
	dividerFromBase = 80
	dividerWidth    = 2
)

var dividerDashes = []float64{10, 5}

// ColorScheme is the card palette.
type ColorScheme struct {
	Primary       color.Color
	PrimaryDark   color.Color
	Background    color.Color
	Text          color.Color
	TextSecondary color.Color
}

// DefaultColorScheme returns the site palette: gold on near-black.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:       color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF},
		PrimaryDark:   color.NRGBA{R: 0x9B, G: 0x7C, B: 0x2E, A: 0xFF},
		Background:    color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF},
		Text:          color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		TextSecondary: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 204},
	}
}

// gradientStops fade from 10% primary at the top-left to 5% primary-dark at the bottom-right.
func gradientStops(c ColorScheme) []ports.GradientStop {
	return []ports.GradientStop{
		{Offset: 0, Color: withAlpha(c.Primary, 26)},
		{Offset: 1, Color: withAlpha(c.PrimaryDark, 13)},
	}
}

func withAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

var placeholderFill = color.NRGBA{R: 255, G: 255, B: 255, A: 26}

// photoOrigin returns the top-left corner of the photo square.
func photoOrigin() (x, y int) {
	return Width - PhotoSize - PhotoMargin, (Height - PhotoSize) / 2
}

// photoCircle returns the centre and radius of the photo circle.
func photoCircle() (cx, cy, r float64) {
	x, y := photoOrigin()
	r = PhotoSize / 2
	return float64(x) + r, float64(y) + r, r
}

type textStyles struct {
	brand, tagline, title, description, price, category, placeholder ports.TextStyle
}

func newTextStyles(c ColorScheme) textStyles {
	return textStyles{
		brand:       ports.TextStyle{FontSize: 48, Weight: ports.WeightBold, Color: c.Primary},
		tagline:     ports.TextStyle{FontSize: 24, Color: c.TextSecondary},
		title:       ports.TextStyle{FontSize: 36, Weight: ports.WeightBold, Color: c.Primary},
		description: ports.TextStyle{FontSize: 20, Color: c.TextSecondary},
		price:       ports.TextStyle{FontSize: 48, Weight: ports.WeightBold, Color: c.Primary},
		category:    ports.TextStyle{FontSize: 18, Color: c.TextSecondary},
		placeholder: ports.TextStyle{FontSize: 24, Color: c.TextSecondary, Align: ports.AlignCenter},
	}
}
