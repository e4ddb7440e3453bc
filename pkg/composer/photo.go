package composer

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/user/ogimage/pkg/ports"
)

// ErrNoPhoto is the failure reason when a product has no images.
var ErrNoPhoto = errors.New("product has no images")

// PhotoResult is the settled outcome of a photo load: either Image is set or Err is.
type PhotoResult struct {
	Source string
	Image  image.Image
	Err    error
}

// Loaded reports whether the photo is available for drawing.
func (r PhotoResult) Loaded() bool {
	return r.Err == nil && r.Image != nil
}

// pendingPhoto is a photo load in flight. wait always returns.
type pendingPhoto struct {
	source string
	ch     <-chan PhotoResult
	ctx    context.Context
	cancel context.CancelFunc
}

// startPhoto begins loading ref in the background, bounded by timeout when positive.
func startPhoto(ctx context.Context, fetcher ports.PhotoFetcher, ref string, timeout time.Duration) *pendingPhoto {
	ch := make(chan PhotoResult, 1)
	if ref == "" {
		ch <- PhotoResult{Err: ErrNoPhoto}
		return &pendingPhoto{ch: ch, ctx: ctx, cancel: func() {}}
	}

	var (
		fctx   context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		fctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		fctx, cancel = context.WithCancel(ctx)
	}

	go func() {
		img, err := fetcher.Fetch(fctx, ref)
		if err == nil && img == nil {
			err = errors.New("fetcher returned no image")
		}
		ch <- PhotoResult{Source: ref, Image: img, Err: err}
	}()

	return &pendingPhoto{source: ref, ch: ch, ctx: fctx, cancel: cancel}
}

// wait blocks until the load settles or its deadline passes.
func (p *pendingPhoto) wait() PhotoResult {
	defer p.cancel()
	select {
	case r := <-p.ch:
		return r
	case <-p.ctx.Done():
		return PhotoResult{Source: p.source, Err: p.ctx.Err()}
	}
}
