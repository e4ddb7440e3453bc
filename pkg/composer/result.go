package composer

import (
	"encoding/base64"
	"time"

	"github.com/user/ogimage/pkg/ports"
)

// Result is an encoded card.
type Result struct {
	Data     []byte
	Format   ports.ImageFormat
	Width    int
	Height   int
	Photo    PhotoResult
	Duration time.Duration
}

// DataURI returns the image as a base64 data: URI.
func (r *Result) DataURI() string {
	return "data:" + r.Format.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}
