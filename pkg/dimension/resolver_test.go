package dimension

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/thienel/filepick/pkg/apperror"
)

// encodePNG produces a real PNG of the given size.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestResolver_Image(t *testing.T) {
	r := NewResolver(nil)

	dims, err := r.Image(context.Background(), encodePNG(t, 12, 34))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dims.Width != 12 || dims.Height != 34 {
		t.Errorf("got %vx%v, want 12x34", dims.Width, dims.Height)
	}
}

func TestResolver_ImageInvalidBytes(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Image(context.Background(), []byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected an error for undecodable bytes")
	}
	if !errors.Is(err, apperror.ErrDecodeFailed) {
		t.Errorf("expected DECODE_FAILED, got %v", err)
	}
}

// fakeProber returns canned results.
type fakeProber struct {
	dims *Dimensions
	err  error
	path string
}

func (f *fakeProber) Probe(ctx context.Context, path string) (*Dimensions, error) {
	f.path = path
	return f.dims, f.err
}

func TestResolver_Video(t *testing.T) {
	prober := &fakeProber{dims: &Dimensions{Width: 1920, Height: 1080}}
	r := NewResolver(prober)

	dims, err := r.Video(context.Background(), "/tmp/clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dims.Width != 1920 || dims.Height != 1080 {
		t.Errorf("got %vx%v, want 1920x1080", dims.Width, dims.Height)
	}
	if prober.path != "/tmp/clip.mp4" {
		t.Errorf("prober received path %q", prober.path)
	}
}

func TestResolver_VideoProbeFailure(t *testing.T) {
	prober := &fakeProber{err: errors.New("unsupported container")}
	r := NewResolver(prober)

	_, err := r.Video(context.Background(), "/tmp/clip.mp4")
	if !errors.Is(err, apperror.ErrProbeFailed) {
		t.Errorf("expected PROBE_FAILED, got %v", err)
	}
}

func TestResolver_VideoRequiresPath(t *testing.T) {
	r := NewResolver(&fakeProber{})

	_, err := r.Video(context.Background(), "")
	if !errors.Is(err, apperror.ErrNoLocalPath) {
		t.Errorf("expected NO_LOCAL_PATH, got %v", err)
	}
}

func TestParseProbeOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    *Dimensions
		wantErr bool
	}{
		{
			name: "single video stream",
			out:  `{"streams":[{"width":1280,"height":720}]}`,
			want: &Dimensions{Width: 1280, Height: 720},
		},
		{
			name:    "no streams",
			out:     `{"streams":[]}`,
			wantErr: true,
		},
		{
			name:    "zero size stream",
			out:     `{"streams":[{"width":0,"height":0}]}`,
			wantErr: true,
		},
		{
			name:    "garbage output",
			out:     `ffprobe exploded`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, err := parseProbeOutput([]byte(tt.out))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", dims)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *dims != *tt.want {
				t.Errorf("got %+v, want %+v", dims, tt.want)
			}
		})
	}
}
