package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct {
	translate func(string) string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator translates labels, for example with l10n.T.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter with untranslated labels.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Card Summary"))
	fmt.Fprintf(&b, "%s: %s\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))

	f.section(&b, t("Product"), [][2]string{
		{t("Title"), s.Product.Title},
		{t("Price"), orDash(s.Product.Price)},
		{t("Category"), orDash(s.Product.Category)},
		{t("Images"), fmt.Sprintf("%d", s.Product.ImageCount)},
	})

	f.section(&b, t("Photo"), [][2]string{
		{t("Source"), orDash(s.Photo.Source)},
		{t("Status"), f.photoStatus(s.Photo)},
	})

	f.section(&b, t("Output"), [][2]string{
		{t("File"), orDash(s.Output.Path)},
		{t("Format"), strings.ToUpper(s.Output.Format)},
		{t("Dimensions"), fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height)},
		{t("File Size"), formatBytes(s.Output.FileSize)},
		{t("Seed"), fmt.Sprintf("%d", s.Output.Seed)},
		{t("Duration"), fmt.Sprintf("%d ms", s.DurationMs)},
	})

	return b.String()
}

func (f *MarkdownFormatter) photoStatus(p PhotoInfo) string {
	switch {
	case p.Loaded:
		return f.translate("Loaded")
	case p.Error != "":
		return fmt.Sprintf("%s (%s)", f.translate("Placeholder"), p.Error)
	default:
		return f.translate("Placeholder")
	}
}

func (f *MarkdownFormatter) section(b *strings.Builder, title string, rows [][2]string) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	fmt.Fprintf(b, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	b.WriteString("|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
