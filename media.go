package filepick

import (
	"context"

	"github.com/thienel/filepick/pkg/dimension"
	"github.com/thienel/filepick/pkg/picker"
)

// MediaSource identifies the surface the user picks media from.
type MediaSource string

const (
	// MediaSourcePhotoGallery selects an existing photo from the gallery.
	MediaSourcePhotoGallery MediaSource = "photo_gallery"

	// MediaSourceVideoGallery selects an existing video from the gallery.
	MediaSourceVideoGallery MediaSource = "video_gallery"

	// MediaSourceCamera captures new media with the camera.
	MediaSourceCamera MediaSource = "camera"
)

// MediaDimensions is the pixel size of a picked image or video.
type MediaDimensions = dimension.Dimensions

// SelectedFile is one prepared selection result. It owns its byte buffer
// exclusively; Data is never nil in a returned value.
type SelectedFile struct {
	// StoragePath is the deterministic destination key a persistence layer
	// should store the bytes under.
	StoragePath string `json:"storage_path"`

	// FilePath is the local ephemeral path, empty on platforms without one.
	FilePath string `json:"file_path,omitempty"`

	// Data is the file payload.
	Data []byte `json:"-"`

	// Dimensions is set only when dimension resolution was requested.
	Dimensions *MediaDimensions `json:"dimensions,omitempty"`

	// BlurHash is a placeholder-image encoding. This module never populates
	// it; the field passes through to the upload layer.
	BlurHash string `json:"blur_hash,omitempty"`
}

// MediaOptions controls a SelectMedia call.
type MediaOptions struct {
	// Source is the picker surface, camera or gallery.
	Source picker.Source

	// Video picks a video instead of an image.
	Video bool

	// Multiple opens the multi-image gallery picker. Video is ignored when
	// set; the multi picker handles images only.
	Multiple bool

	// IncludeDimensions resolves pixel dimensions for each result. When
	// false no decode or probe work is performed.
	IncludeDimensions bool

	// Prefix overrides the configured storage path prefix.
	Prefix string
}

// FileOptions controls a SelectFiles call.
type FileOptions struct {
	// Extensions constrains the dialog to the given extensions (without
	// leading dot). Empty means any file.
	Extensions []string

	// Multiple allows picking more than one file.
	Multiple bool

	// Prefix overrides the configured storage path prefix.
	Prefix string
}

// ChoiceOptions controls a PickWithSourceChoice call.
type ChoiceOptions struct {
	// VideoOnly requests video capture when the user picks the camera.
	VideoOnly bool

	// IncludeDimensions resolves pixel dimensions for each result.
	IncludeDimensions bool

	// Prefix overrides the configured storage path prefix.
	Prefix string
}

// SourceChooser presents the source-choice surface (a bottom sheet on
// mobile) and reports the user's pick. ok is false when the user dismissed
// the surface without choosing.
type SourceChooser interface {
	Choose(ctx context.Context, sources []MediaSource) (chosen MediaSource, ok bool, err error)
}
