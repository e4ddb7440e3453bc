// Package summarizer produces human-readable reports of generated cards.
package summarizer

import "time"

// Summary describes one generated card.
type Summary struct {
	GeneratedAt time.Time

	Product ProductInfo
	Photo   PhotoInfo
	Output  OutputInfo

	DurationMs int
}

// ProductInfo echoes the product the card was drawn for.
type ProductInfo struct {
	Title      string
	Price      string
	Category   string
	ImageCount int
}

// PhotoInfo records how the photo slot was filled.
type PhotoInfo struct {
	Source string
	Loaded bool
	// Error is the load failure, empty when the photo loaded or none was given.
	Error string
}

// OutputInfo contains information about the encoded card.
type OutputInfo struct {
	Path     string
	Format   string
	Width    int
	Height   int
	FileSize int64
	Seed     int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithProduct sets product information.
func (b *Builder) WithProduct(info ProductInfo) *Builder {
	b.summary.Product = info
	return b
}

// WithPhoto records the photo outcome. A nil err with loaded false means no photo was given.
func (b *Builder) WithPhoto(source string, loaded bool, err error) *Builder {
	b.summary.Photo = PhotoInfo{
		Source: source,
		Loaded: loaded,
	}
	if err != nil {
		b.summary.Photo.Error = err.Error()
	}
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(info OutputInfo) *Builder {
	b.summary.Output = info
	return b
}

// WithDuration sets the generation time.
func (b *Builder) WithDuration(d time.Duration) *Builder {
	b.summary.DurationMs = int(d.Milliseconds())
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
