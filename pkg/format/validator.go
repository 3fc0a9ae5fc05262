// Package format validates picked files against the fixed set of MIME types
// the application accepts for upload. The allow-set is deliberately not
// configurable per call.
package format

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/thienel/filepick/pkg/notify"
)

// allowed is the hard allow-list of upload formats.
var allowed = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"video/mp4":  {},
	"image/gif":  {},
}

// knownExtensions maps extensions the pipeline handles to their MIME types.
// Checked before the stdlib table, which lacks entries such as .mp4 on some
// platforms.
var knownExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webp": "image/webp",
}

// ResolveType resolves the MIME type of a file path or name from its
// extension. Unknown extensions yield an empty string.
func ResolveType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := knownExtensions[ext]; ok {
		return mt
	}
	mt := mime.TypeByExtension(ext)
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

// Allowed reports whether the file path or name resolves to an accepted
// MIME type.
func Allowed(name string) bool {
	_, ok := allowed[ResolveType(name)]
	return ok
}

// Detect sniffs the MIME type from content magic bytes, independent of the
// filename.
func Detect(data []byte) string {
	return mimetype.Detect(data).String()
}

// DetectAllowed reports whether the sniffed content type is accepted.
func DetectAllowed(data []byte) bool {
	_, ok := allowed[Detect(data)]
	return ok
}

// Validator is the UI-bound variant of the allow-list check: rejections are
// surfaced to the user as a transient notification. The boolean is returned
// either way; the caller decides whether to abort.
type Validator struct {
	notifier notify.Notifier
}

// NewValidator creates a Validator. The notifier may be nil, in which case
// rejections are silent.
func NewValidator(notifier notify.Notifier) *Validator {
	return &Validator{notifier: notifier}
}

// Check validates the file name against the allow-list, notifying the user
// of the rejected type on failure.
func (v *Validator) Check(name string) bool {
	if Allowed(name) {
		return true
	}
	if v.notifier != nil {
		mt := ResolveType(name)
		if mt == "" {
			mt = strings.ToLower(filepath.Ext(name))
		}
		v.notifier.Notify("Unsupported file format: "+mt, false)
	}
	return false
}
