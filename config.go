package filepick

import (
	"go.uber.org/zap"

	"github.com/thienel/filepick/pkg/dimension"
	"github.com/thienel/filepick/pkg/notify"
	"github.com/thienel/filepick/pkg/picker"
	"github.com/thienel/filepick/pkg/storagepath"
)

// Config holds the complete configuration for the Selector.
type Config struct {
	// Media is the platform camera/gallery picker.
	// Required for SelectMedia and PickWithSourceChoice.
	Media picker.MediaPicker

	// Files is the platform file-open dialog.
	// Required for SelectFiles and SelectFile.
	Files picker.FilePicker

	// Chooser presents the source-choice surface for
	// PickWithSourceChoice.
	Chooser SourceChooser

	// Notifier surfaces transient status messages.
	// Default: an in-process notify.Hub.
	Notifier notify.Notifier

	// Clock drives storage path timestamps.
	// Default: the system clock.
	Clock storagepath.Clock

	// Prober reads video pixel sizes.
	// Default: ffprobe resolved on PATH.
	Prober dimension.VideoProber

	// Platform describes the capabilities of the running platform,
	// resolved once at startup.
	Platform PlatformConfig

	// Prefix is the default storage path prefix, overridable per call.
	// Default: "uploads"
	Prefix string

	// Logger is the structured logger. Default: tlog.
	Logger *zap.SugaredLogger
}

// PlatformConfig captures platform-conditional behavior as flags instead of
// scattered runtime checks.
type PlatformConfig struct {
	// SupportsCamera exposes the camera option in the source chooser.
	SupportsCamera bool

	// HasLocalFilePath indicates picked items have a resolvable local
	// path. False on web-like platforms; results then carry no FilePath
	// and videos cannot be probed for dimensions.
	HasLocalFilePath bool
}

// DefaultConfig returns a configuration with sensible defaults for a native
// platform.
func DefaultConfig() Config {
	return Config{
		Platform: PlatformConfig{
			SupportsCamera:   true,
			HasLocalFilePath: true,
		},
		Prefix: "uploads",
	}
}
