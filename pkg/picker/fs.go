package picker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS is a filesystem-backed picker over a fixed list of paths. It stands in
// for the interactive platform dialogs in CLI tools and tests: "picking"
// returns the configured files with their bytes loaded from disk.
type FS struct {
	paths []string
}

// NewFS creates a filesystem picker over the given paths. An empty list
// behaves like a cancelled dialog.
func NewFS(paths ...string) *FS {
	return &FS{paths: paths}
}

var _ MediaPicker = (*FS)(nil)
var _ FilePicker = (*FS)(nil)

// PickImage returns the first configured file.
func (f *FS) PickImage(ctx context.Context, source Source) (*Item, error) {
	return f.first(ctx)
}

// PickVideo returns the first configured file.
func (f *FS) PickVideo(ctx context.Context, source Source) (*Item, error) {
	return f.first(ctx)
}

// PickMultiImage returns all configured files.
func (f *FS) PickMultiImage(ctx context.Context) ([]Item, error) {
	return f.load(ctx, f.paths)
}

// PickFiles returns the configured files matching the extension filter.
func (f *FS) PickFiles(ctx context.Context, extensions []string, multiple bool) ([]Item, error) {
	paths := f.paths
	if len(extensions) > 0 {
		paths = filterByExtension(paths, extensions)
	}
	if !multiple && len(paths) > 1 {
		paths = paths[:1]
	}
	return f.load(ctx, paths)
}

func (f *FS) first(ctx context.Context) (*Item, error) {
	if len(f.paths) == 0 {
		return nil, nil
	}
	items, err := f.load(ctx, f.paths[:1])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (f *FS) load(ctx context.Context, paths []string) ([]Item, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	items := make([]Item, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		items = append(items, Item{
			Name: filepath.Base(p),
			Path: p,
			Data: data,
		})
	}
	return items, nil
}

// filterByExtension keeps paths whose extension appears in the allow list.
func filterByExtension(paths, extensions []string) []string {
	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	var kept []string
	for _, p := range paths {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
		if _, ok := wanted[ext]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}
