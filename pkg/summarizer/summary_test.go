package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/ogimage/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithProduct(ProductInfo{Title: "Brooch", ImageCount: 2}).
		WithPhoto("https://example.com/a.jpg", false, errors.New("status 404")).
		WithOutput(OutputInfo{Path: "card.png", Format: "png", Width: 1200, Height: 630}).
		WithDuration(1500 * time.Millisecond).
		Build()

	if summary.Product.Title != "Brooch" || summary.Product.ImageCount != 2 {
		t.Errorf("unexpected product %+v", summary.Product)
	}
	if summary.Photo.Loaded || summary.Photo.Error != "status 404" {
		t.Errorf("unexpected photo %+v", summary.Photo)
	}
	if summary.Output.Width != 1200 {
		t.Errorf("unexpected output %+v", summary.Output)
	}
	if summary.DurationMs != 1500 {
		t.Errorf("expected 1500 ms, got %d", summary.DurationMs)
	}
}

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Product: ProductInfo{
			Title:      "Gold Enamel Brooch",
			Price:      "$450",
			Category:   "Brooches",
			ImageCount: 1,
		},
		Photo: PhotoInfo{
			Source: "https://example.com/photo.jpg",
			Loaded: true,
		},
		Output: OutputInfo{
			Path:     "out/card.png",
			Format:   "png",
			Width:    1200,
			Height:   630,
			FileSize: 1024 * 1024,
			Seed:     42,
		},
		DurationMs: 120,
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Card Summary",
		"2024-01-15T10:30:00Z",
		"| Title | Gold Enamel Brooch |",
		"| Price | $450 |",
		"| Status | Loaded |",
		"| Format | PNG |",
		"1200x630",
		"1.00 MB",
		"120 ms",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_PhotoStatus(t *testing.T) {
	tests := []struct {
		name  string
		photo PhotoInfo
		want  string
	}{
		{"loaded", PhotoInfo{Source: "a.png", Loaded: true}, "| Status | Loaded |"},
		{"failed", PhotoInfo{Source: "a.png", Error: "GET a|b: status 404"}, `| Status | Placeholder (GET a\|b: status 404) |`},
		{"no images", PhotoInfo{}, "| Source | - |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSummary()
			s.Photo = tt.photo
			if result := NewMarkdownFormatter().Format(s); !strings.Contains(result, tt.want) {
				t.Errorf("expected %q in\n%s", tt.want, result)
			}
		})
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translations := map[string]string{
		"Card Summary": "カードサマリー",
		"Title":        "タイトル",
	}
	formatter := NewMarkdownFormatter(WithTranslator(func(key string) string {
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}))

	result := formatter.Format(sampleSummary())
	if !strings.Contains(result, "# カードサマリー") || !strings.Contains(result, "| タイトル |") {
		t.Errorf("expected translated labels, got\n%s", result)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{3 << 20, "3.00 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(*Summary) string { return "report" }), fs)

	if err := w.Write("out/card.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if data, ok := fs.GetFile("out/card.md"); !ok || string(data) != "report" {
		t.Errorf("unexpected file contents %q", data)
	}

	fs.WriteErr = errors.New("read-only")
	if err := w.Write("out/card.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}
