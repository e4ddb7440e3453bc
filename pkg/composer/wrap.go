package composer

import (
	"strings"

	"github.com/user/ogimage/pkg/ports"
)

// WrapText greedily packs the space-separated words of text into lines no
// wider than maxWidth when measured in style. A word wider than maxWidth is
// never split and ends up alone on its line. Empty text yields no lines.
func WrapText(m ports.TextMeasurer, text string, maxWidth float64, style ports.TextStyle) []string {
	if text == "" {
		return nil
	}

	words := strings.Split(text, " ")
	lines := make([]string, 0, 4)
	current := words[0]

	for _, word := range words[1:] {
		candidate := current + " " + word
		if w, _ := m.MeasureText(candidate, style); w > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}

	return append(lines, current)
}

// TruncateDescription keeps the first DescriptionLimit characters of s and
// appends Ellipsis. The ellipsis is appended even when nothing was cut.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) > DescriptionLimit {
		runes = runes[:DescriptionLimit]
	}
	return string(runes) + Ellipsis
}
