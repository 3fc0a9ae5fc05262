// Package dimension determines pixel dimensions of picked media. Images are
// decoded from their in-memory bytes; videos are probed on disk through an
// external metadata prober.
package dimension

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/thienel/filepick/pkg/apperror"
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// VideoProber reads the native pixel size of a video at a local path.
type VideoProber interface {
	Probe(ctx context.Context, path string) (*Dimensions, error)
}

// Resolver resolves media dimensions per kind.
type Resolver struct {
	prober VideoProber
}

// NewResolver creates a Resolver. A nil prober falls back to an FFProbe
// using the ffprobe binary on PATH.
func NewResolver(prober VideoProber) *Resolver {
	if prober == nil {
		prober = NewFFProbe("")
	}
	return &Resolver{prober: prober}
}

// Image decodes the raster header of the given bytes and returns its pixel
// size. Undecodable bytes are an error.
func (r *Resolver) Image(ctx context.Context, data []byte) (*Dimensions, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.ErrDecodeFailed.WithError(err)
	}
	return &Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

// Video probes the media at the given local path and returns its native
// pixel size. The call blocks until the prober finishes or the context is
// cancelled. A web-style in-memory file has no path and cannot be probed.
func (r *Resolver) Video(ctx context.Context, path string) (*Dimensions, error) {
	if path == "" {
		return nil, apperror.ErrNoLocalPath
	}
	dims, err := r.prober.Probe(ctx, path)
	if err != nil {
		return nil, apperror.ErrProbeFailed.WithError(err)
	}
	return dims, nil
}
