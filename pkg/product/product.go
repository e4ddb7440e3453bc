// Package product defines the product record a card is generated from.
package product

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/ogimage/pkg/ports"
)

// Product is the read-only input of a generation.
// Only Title is expected; every other field is optional.
type Product struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Price       string   `yaml:"price,omitempty" json:"price,omitempty"`
	Category    string   `yaml:"category,omitempty" json:"category,omitempty"`
	Images      []string `yaml:"images,omitempty" json:"images,omitempty"`
}

// PrimaryImage returns the first image reference, or "" when there is none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Parse decodes a product from YAML. JSON documents are accepted as well.
func Parse(data []byte) (Product, error) {
	var p Product
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse product: %w", err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return p, fmt.Errorf("parse product: title is required")
	}
	return p, nil
}

// LoadFromFile reads a product file through fs.
func LoadFromFile(fs ports.FileSystem, path string) (Product, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return Product{}, fmt.Errorf("read product %s: %w", path, err)
	}
	return Parse(data)
}
