// Package photofetch loads product photos from http(s) URLs, data URIs and local files.
package photofetch

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
	_ "golang.org/x/image/webp"

	"github.com/user/ogimage/pkg/ports"
)

// DefaultMaxBytes bounds the size of a photo download.
const DefaultMaxBytes = 20 << 20

// Options configures a Fetcher.
type Options struct {
	// Retries is the number of extra attempts for failed HTTP requests.
	Retries int
	// RetryWait is the minimum wait between HTTP attempts.
	RetryWait time.Duration
	// UserAgent is sent with HTTP requests when non-empty.
	UserAgent string
	// MaxBytes limits the payload size; zero selects DefaultMaxBytes.
	MaxBytes int64
}

// Fetcher implements ports.PhotoFetcher.
type Fetcher struct {
	client    *retryablehttp.Client
	fs        ports.FileSystem
	logger    ports.Logger
	userAgent string
	maxBytes  int64
}

// New creates a new Fetcher. Local paths are read through fs.
func New(fs ports.FileSystem, logger ports.Logger, opts Options) *Fetcher {
	logger = logger.WithComponent("photofetch")

	client := retryablehttp.NewClient()
	client.RetryMax = opts.Retries
	if opts.RetryWait > 0 {
		client.RetryWaitMin = opts.RetryWait
		client.RetryWaitMax = 4 * opts.RetryWait
	}
	client.Logger = leveledLogger{logger}

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &Fetcher{
		client:    client,
		fs:        fs,
		logger:    logger,
		userAgent: opts.UserAgent,
		maxBytes:  maxBytes,
	}
}

// Fetch retrieves and decodes the image at ref.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (image.Image, error) {
	data, err := f.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	f.logger.Debug("Photo decoded: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

func (f *Fetcher) load(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case ref == "":
		return nil, errors.New("empty photo reference")
	case hasScheme(ref, "http"), hasScheme(ref, "https"):
		return f.loadHTTP(ctx, ref)
	case hasScheme(ref, "data"):
		return decodeDataURI(ref)
	case hasScheme(ref, "file"):
		u, err := url.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("parse file URL: %w", err)
		}
		return f.loadFile(u.Path)
	default:
		return f.loadFile(ref)
	}
}

func (f *Fetcher) loadHTTP(ctx context.Context, ref string) ([]byte, error) {
	f.logger.Debug("Fetching photo %s", ref)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", ref, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("photo exceeds %d bytes", f.maxBytes)
	}
	return data, nil
}

func (f *Fetcher) loadFile(path string) ([]byte, error) {
	exists, err := f.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("photo not found: %s", path)
	}

	data, err := f.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("photo exceeds %d bytes", f.maxBytes)
	}
	return data, nil
}

// decodeDataURI returns the payload of a data: URI.
func decodeDataURI(ref string) ([]byte, error) {
	meta, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data URI: %w", err)
		}
		return data, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}
	return []byte(data), nil
}

func hasScheme(ref, scheme string) bool {
	return len(ref) > len(scheme) && ref[len(scheme)] == ':' && strings.EqualFold(ref[:len(scheme)], scheme)
}

// Ensure Fetcher implements ports.PhotoFetcher
var _ ports.PhotoFetcher = (*Fetcher)(nil)

// leveledLogger routes retryablehttp's key/value logging to a ports.Logger.
type leveledLogger struct {
	logger ports.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.logger.Debug("%s", join(msg, kv)) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.logger.Debug("%s", join(msg, kv)) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.logger.Debug("%s", join(msg, kv)) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.logger.Debug("%s", join(msg, kv)) }

func join(msg string, kv []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}

var _ retryablehttp.LeveledLogger = leveledLogger{}
