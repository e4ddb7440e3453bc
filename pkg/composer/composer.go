// Package composer draws Open Graph product cards.
package composer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/user/ogimage/pkg/ports"
	"github.com/user/ogimage/pkg/product"
)

// Options configures a Composer.
type Options struct {
	// Format is the output encoding.
	Format ports.ImageFormat
	// Quality is the JPEG quality; ignored for PNG.
	Quality int
	// PhotoTimeout bounds the product photo load. Zero means no timeout.
	PhotoTimeout time.Duration
	// Seed makes the decorative dots reproducible. Zero seeds from the clock.
	Seed int64
	// Dots is the number of decorative dots. Zero selects DecorationDots; negative draws none.
	Dots int
	// Colors overrides DefaultColorScheme when non-nil.
	Colors *ColorScheme
}

// DefaultOptions returns PNG output with a 10 second photo timeout.
func DefaultOptions() Options {
	return Options{
		Format:       ports.FormatPNG,
		Quality:      90,
		PhotoTimeout: 10 * time.Second,
	}
}

// Composer renders product cards. Every Generate call draws on its own
// surface, so one Composer may serve concurrent calls.
type Composer struct {
	renderer ports.Renderer
	fetcher  ports.PhotoFetcher
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
	opts     Options
	colors   ColorScheme
	styles   textStyles
}

// New creates a new Composer.
func New(renderer ports.Renderer, fetcher ports.PhotoFetcher, fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger, opts Options) *Composer {
	colors := DefaultColorScheme()
	if opts.Colors != nil {
		colors = *opts.Colors
	}
	return &Composer{
		renderer: renderer,
		fetcher:  fetcher,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("composer"),
		opts:     opts,
		colors:   colors,
		styles:   newTextStyles(colors),
	}
}

// Generate draws the card for p and returns it encoded.
// A photo that cannot be loaded is replaced by a placeholder; only encoding errors are returned.
func (c *Composer) Generate(ctx context.Context, p product.Product) (*Result, error) {
	start := time.Now()
	c.logger.Debug("Generating card for %s", p.Title)

	// The fetch runs while the static layers are drawn.
	pending := startPhoto(ctx, c.fetcher, p.PrimaryImage(), c.opts.PhotoTimeout)

	canvas := c.renderer.CreateCanvas(Width, Height, c.colors.Background)
	c.drawGradient(canvas)
	c.drawLogo(canvas)

	photo := pending.wait()
	if photo.Loaded() {
		c.logger.Debug("Photo loaded: %dx%d", photo.Image.Bounds().Dx(), photo.Image.Bounds().Dy())
		if c.sink.Enabled() {
			if err := c.sink.SavePhoto(photo.Image); err != nil {
				c.logger.Warn("Failed to save debug output: %s", err)
			}
		}
		c.drawPhoto(canvas, photo)
	} else {
		if !errors.Is(photo.Err, ErrNoPhoto) {
			c.logger.Warn("Photo unavailable, drawing placeholder: %s", photo.Err)
		}
		c.drawPlaceholder(canvas)
	}

	c.drawProductInfo(canvas, p)
	c.drawDecorations(canvas, c.newRand())

	img := canvas.ToImage()
	if c.sink.Enabled() {
		if err := c.sink.SaveComposed(img); err != nil {
			c.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	data, err := c.renderer.EncodeImage(img, c.opts.Format, c.opts.Quality)
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	c.logger.Debug("Card encoded: %d bytes", len(data))

	// The decoded photo is not part of the result.
	photo.Image = nil
	return &Result{
		Data:     data,
		Format:   c.opts.Format,
		Width:    Width,
		Height:   Height,
		Photo:    photo,
		Duration: time.Since(start),
	}, nil
}

// Download saves an encoded card to filename.
func (c *Composer) Download(result *Result, filename string) error {
	if err := c.fs.WriteFile(filename, result.Data); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	c.logger.Debug("Card saved to %s", filename)
	return nil
}

func (c *Composer) newRand() *rand.Rand {
	seed := c.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c *Composer) drawGradient(canvas ports.Canvas) {
	canvas.FillLinearGradient(0, 0, Width, Height, gradientStops(c.colors))
}

func (c *Composer) drawLogo(canvas ports.Canvas) {
	canvas.DrawText(BrandName, logoX, brandY, c.styles.brand)
	canvas.DrawText(BrandTagline, logoX, taglineY, c.styles.tagline)
}

func (c *Composer) drawPhoto(canvas ports.Canvas, photo PhotoResult) {
	x, y := photoOrigin()
	cx, cy, r := photoCircle()

	canvas.Save()
	canvas.ClipCircle(cx, cy, r)
	canvas.DrawImage(c.renderer.ResizeImage(photo.Image, PhotoSize, PhotoSize), x, y)
	canvas.Restore()

	canvas.StrokeCircle(cx, cy, r, c.colors.Primary, PhotoBorderWidth)
}

func (c *Composer) drawPlaceholder(canvas ports.Canvas) {
	x, y := photoOrigin()
	cx, cy, r := photoCircle()

	canvas.FillCircle(cx, cy, r, placeholderFill)
	canvas.StrokeCircle(cx, cy, r, c.colors.Primary, PhotoBorderWidth)
	canvas.DrawText(PlaceholderLabel, x+PhotoSize/2, y+PhotoSize/2, c.styles.placeholder)
}

func (c *Composer) drawProductInfo(canvas ports.Canvas, p product.Product) {
	for i, line := range WrapText(canvas, p.Title, MaxTextWidth, c.styles.title) {
		canvas.DrawText(line, TextX, TextY+i*titleLineHeight, c.styles.title)
	}

	if p.Description != "" {
		desc := TruncateDescription(p.Description)
		for i, line := range WrapText(canvas, desc, MaxTextWidth, c.styles.description) {
			canvas.DrawText(line, TextX, TextY+descOffset+i*descLineHeight, c.styles.description)
		}
	}

	if p.Price != "" {
		canvas.DrawText(p.Price, TextX, TextY+priceOffset, c.styles.price)
	}

	if p.Category != "" {
		canvas.DrawText("Category: "+p.Category, TextX, TextY+categoryOffset, c.styles.category)
	}
}

func (c *Composer) drawDecorations(canvas ports.Canvas, rng *rand.Rand) {
	dots := c.opts.Dots
	if dots == 0 {
		dots = DecorationDots
	}
	for i := 0; i < dots; i++ {
		x := rng.Float64() * Width
		y := rng.Float64() * Height
		r := rng.Float64()*dotRadiusRange + dotMinRadius
		canvas.FillCircle(x, y, r, c.colors.Primary)
	}

	lineY := float64(Height - dividerFromBase)
	canvas.DrawDashedLine(dividerX1, lineY, dividerX2, lineY, c.colors.Primary, dividerWidth, dividerDashes)
}
