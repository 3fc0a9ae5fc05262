// Package webpick adapts an incoming multipart form to the selection
// pipeline. On the web there is no platform dialog to invoke; the browser
// already performed the pick and the request carries the result.
package webpick

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/thienel/filepick/pkg/picker"
)

// FormPicker is a per-request picker.FilePicker over multipart file
// headers. Web picks have no local file path; items carry bytes only.
type FormPicker struct {
	headers []*multipart.FileHeader
	maxSize int64
}

// NewFormPicker creates a FormPicker over the given file headers. maxSize
// of 0 means no per-file limit.
func NewFormPicker(headers []*multipart.FileHeader, maxSize int64) *FormPicker {
	return &FormPicker{headers: headers, maxSize: maxSize}
}

var _ picker.FilePicker = (*FormPicker)(nil)

// PickFiles loads the submitted files matching the extension filter.
func (f *FormPicker) PickFiles(ctx context.Context, extensions []string, multiple bool) ([]picker.Item, error) {
	headers := f.headers
	if len(extensions) > 0 {
		headers = filterHeaders(headers, extensions)
	}
	if !multiple && len(headers) > 1 {
		headers = headers[:1]
	}
	if len(headers) == 0 {
		return nil, nil
	}

	items := make([]picker.Item, 0, len(headers))
	for _, h := range headers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.maxSize > 0 && h.Size > f.maxSize {
			return nil, fmt.Errorf("%s exceeds the maximum size of %d bytes", h.Filename, f.maxSize)
		}
		data, err := readHeader(h)
		if err != nil {
			return nil, err
		}
		items = append(items, picker.Item{
			Name: filepath.Base(h.Filename),
			Data: data,
		})
	}
	return items, nil
}

func readHeader(h *multipart.FileHeader) ([]byte, error) {
	file, err := h.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", h.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", h.Filename, err)
	}
	return data, nil
}

func filterHeaders(headers []*multipart.FileHeader, extensions []string) []*multipart.FileHeader {
	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	var kept []*multipart.FileHeader
	for _, h := range headers {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(h.Filename), "."))
		if _, ok := wanted[ext]; ok {
			kept = append(kept, h)
		}
	}
	return kept
}
