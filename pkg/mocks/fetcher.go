package mocks

import (
	"context"
	"image"
	"sync"

	"github.com/user/ogimage/pkg/ports"
)

// PhotoFetcher is a mock implementation of ports.PhotoFetcher.
type PhotoFetcher struct {
	mu sync.Mutex

	FetchFunc func(ctx context.Context, ref string) (image.Image, error)

	// Calls records every requested reference.
	Calls []string
}

// NewPhotoFetcher creates a mock that returns img and err for every reference.
func NewPhotoFetcher(img image.Image, err error) *PhotoFetcher {
	return &PhotoFetcher{
		FetchFunc: func(ctx context.Context, ref string) (image.Image, error) {
			return img, err
		},
	}
}

func (m *PhotoFetcher) Fetch(ctx context.Context, ref string) (image.Image, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, ref)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, ref)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

var _ ports.PhotoFetcher = (*PhotoFetcher)(nil)
