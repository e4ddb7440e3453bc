package ports

import (
	"context"
	"image"
)

// PhotoFetcher loads a product photo referenced by URL.
type PhotoFetcher interface {
	// Fetch retrieves and decodes the image at ref.
	// ref may be an http(s) URL, a data: URI, a file:// URL or a plain path.
	Fetch(ctx context.Context, ref string) (image.Image, error)
}
