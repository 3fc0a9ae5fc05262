// Package picker defines the collaborator interfaces for the external
// platform pickers (camera, gallery, file dialog) and a filesystem-backed
// implementation for environments without an interactive picker UI.
//
// Cancellation is a normal outcome, not a failure: a picker reports it by
// returning a nil item or an empty batch with a nil error.
package picker

import "context"

// Source selects which device surface a media picker opens.
type Source string

const (
	// SourceCamera captures new media with the device camera.
	SourceCamera Source = "camera"

	// SourceGallery selects existing media from the device gallery.
	SourceGallery Source = "gallery"
)

// Item is a single raw platform pick. Data is the eagerly loaded payload;
// Path is the local ephemeral path, empty on platforms without one.
type Item struct {
	Name string
	Path string
	Data []byte
}

// MediaPicker is the platform camera/gallery picker.
type MediaPicker interface {
	// PickImage opens the single-image picker for the given source.
	// A nil item with a nil error means the user cancelled.
	PickImage(ctx context.Context, source Source) (*Item, error)

	// PickVideo opens the single-video picker for the given source.
	PickVideo(ctx context.Context, source Source) (*Item, error)

	// PickMultiImage opens the multi-image gallery picker. An empty batch
	// means the user cancelled or selected nothing.
	PickMultiImage(ctx context.Context) ([]Item, error)
}

// FilePicker is the platform file-open dialog. Implementations load file
// data eagerly so every returned item carries its bytes.
type FilePicker interface {
	// PickFiles opens the dialog, optionally constrained to the given
	// extensions (without leading dot, lowercase). When multiple is false
	// at most one item is returned.
	PickFiles(ctx context.Context, extensions []string, multiple bool) ([]Item, error)
}
