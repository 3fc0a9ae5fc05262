// Package filepick orchestrates media and file selection for upload. It
// invokes the platform pickers through injected collaborator interfaces,
// validates and normalizes their results and hands back uniform
// SelectedFile records with deterministic storage paths. Persisting the
// bytes is the caller's concern.
package filepick

import (
	"context"
	"sync"

	"github.com/thienel/tlog"
	"go.uber.org/zap"

	"github.com/thienel/filepick/pkg/apperror"
	"github.com/thienel/filepick/pkg/dimension"
	"github.com/thienel/filepick/pkg/format"
	"github.com/thienel/filepick/pkg/notify"
	"github.com/thienel/filepick/pkg/picker"
	"github.com/thienel/filepick/pkg/storagepath"
)

// Selector is the selection orchestrator.
type Selector struct {
	config    Config
	logger    *zap.SugaredLogger
	media     picker.MediaPicker
	files     picker.FilePicker
	chooser   SourceChooser
	notifier  notify.Notifier
	paths     *storagepath.Builder
	dims      *dimension.Resolver
	validator *format.Validator
}

// New creates a Selector with the given configuration.
func New(config Config) (*Selector, error) {
	// Merge with defaults
	defaults := DefaultConfig()
	if config.Prefix == "" {
		config.Prefix = defaults.Prefix
	}

	logger := config.Logger
	if logger == nil {
		_ = tlog.InitWithDefaults()
		logger = tlog.S()
	}

	notifier := config.Notifier
	if notifier == nil {
		notifier = notify.NewHub()
	}

	s := &Selector{
		config:    config,
		logger:    logger,
		media:     config.Media,
		files:     config.Files,
		chooser:   config.Chooser,
		notifier:  notifier,
		paths:     storagepath.NewBuilder(config.Clock),
		dims:      dimension.NewResolver(config.Prober),
		validator: format.NewValidator(notifier),
	}

	logger.Debugw("Selector initialized",
		"supports_camera", config.Platform.SupportsCamera,
		"has_local_file_path", config.Platform.HasLocalFilePath,
		"prefix", config.Prefix,
	)

	return s, nil
}

// SelectMedia invokes the image or video picker and assembles the results.
// A nil slice with a nil error means the user cancelled or nothing usable
// was returned; decode and probe failures propagate as errors.
func (s *Selector) SelectMedia(ctx context.Context, opts MediaOptions) ([]SelectedFile, error) {
	if s.media == nil {
		return nil, apperror.ErrPickerFailed.WithMessage("no media picker configured")
	}

	if opts.Multiple {
		return s.selectMultiImage(ctx, opts)
	}

	var (
		item *picker.Item
		err  error
	)
	if opts.Video {
		item, err = s.media.PickVideo(ctx, opts.Source)
	} else {
		item, err = s.media.PickImage(ctx, opts.Source)
	}
	if err != nil {
		return nil, apperror.ErrPickerFailed.WithError(err)
	}
	if item == nil || len(item.Data) == 0 {
		s.logger.Debugw("media selection yielded nothing", "source", opts.Source, "video", opts.Video)
		return nil, nil
	}

	var dims *MediaDimensions
	if opts.IncludeDimensions {
		if opts.Video {
			dims, err = s.dims.Video(ctx, item.Path)
		} else {
			dims, err = s.dims.Image(ctx, item.Data)
		}
		if err != nil {
			return nil, err
		}
	}

	selected := SelectedFile{
		StoragePath: s.paths.Build(s.prefix(opts.Prefix), item.Name, opts.Video),
		FilePath:    s.localPath(item.Path),
		Data:        item.Data,
		Dimensions:  dims,
	}
	s.logger.Infow("media selected", "storage_path", selected.StoragePath, "size", len(selected.Data))
	return []SelectedFile{selected}, nil
}

// selectMultiImage handles the multi-image gallery picker. Items are
// processed concurrently; the output keeps the original pick order and each
// member's storage path carries its position as the index suffix.
func (s *Selector) selectMultiImage(ctx context.Context, opts MediaOptions) ([]SelectedFile, error) {
	items, err := s.media.PickMultiImage(ctx)
	if err != nil {
		return nil, apperror.ErrPickerFailed.WithError(err)
	}
	if len(items) == 0 {
		s.logger.Debugw("multi-image selection yielded nothing")
		return nil, nil
	}
	for _, item := range items {
		if len(item.Data) == 0 {
			s.logger.Debugw("multi-image batch member had no data, dropping batch")
			return nil, nil
		}
	}

	prefix := s.prefix(opts.Prefix)
	results := make([]SelectedFile, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := items[i]

			var dims *MediaDimensions
			if opts.IncludeDimensions {
				d, err := s.dims.Image(ctx, item.Data)
				if err != nil {
					errs[i] = err
					return
				}
				dims = d
			}

			results[i] = SelectedFile{
				StoragePath: s.paths.BuildAt(prefix, item.Name, false, i),
				FilePath:    s.localPath(item.Path),
				Data:        item.Data,
				Dimensions:  dims,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.logger.Infow("multi-image batch selected", "count", len(results))
	return results, nil
}

// SelectFiles invokes the file-open dialog and assembles the results.
func (s *Selector) SelectFiles(ctx context.Context, opts FileOptions) ([]SelectedFile, error) {
	if s.files == nil {
		return nil, apperror.ErrPickerFailed.WithMessage("no file picker configured")
	}
	return s.SelectFilesFrom(ctx, s.files, opts)
}

// SelectFilesFrom runs the file-selection pipeline over an explicit picker.
// Web bindings use this with a per-request picker wrapping the incoming
// form.
func (s *Selector) SelectFilesFrom(ctx context.Context, p picker.FilePicker, opts FileOptions) ([]SelectedFile, error) {
	items, err := p.PickFiles(ctx, opts.Extensions, opts.Multiple)
	if err != nil {
		return nil, apperror.ErrPickerFailed.WithError(err)
	}
	if len(items) == 0 {
		s.logger.Debugw("file selection yielded nothing")
		return nil, nil
	}

	// The dialog loads data eagerly; anything without bytes is unusable.
	for _, item := range items {
		if len(item.Data) == 0 {
			s.logger.Debugw("file selection returned an item without data", "name", item.Name)
			return nil, nil
		}
	}

	prefix := s.prefix(opts.Prefix)
	results := make([]SelectedFile, 0, len(items))
	for i, item := range items {
		var path string
		if opts.Multiple {
			path = s.paths.BuildAt(prefix, item.Name, false, i)
		} else {
			path = s.paths.Build(prefix, item.Name, false)
		}
		results = append(results, SelectedFile{
			StoragePath: path,
			FilePath:    s.localPath(item.Path),
			Data:        item.Data,
		})
	}

	s.logger.Infow("files selected", "count", len(results))
	return results, nil
}

// SelectFile is SelectFiles constrained to one result.
func (s *Selector) SelectFile(ctx context.Context, opts FileOptions) (*SelectedFile, error) {
	opts.Multiple = false
	results, err := s.SelectFiles(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// PickWithSourceChoice presents the source-choice surface, derives the
// video flag from the user's pick and delegates to SelectMedia. The camera
// option is hidden on platforms without one.
func (s *Selector) PickWithSourceChoice(ctx context.Context, opts ChoiceOptions) ([]SelectedFile, error) {
	if s.chooser == nil {
		return nil, apperror.ErrPickerFailed.WithMessage("no source chooser configured")
	}

	sources := []MediaSource{MediaSourcePhotoGallery, MediaSourceVideoGallery}
	if s.config.Platform.SupportsCamera {
		sources = append(sources, MediaSourceCamera)
	}

	chosen, ok, err := s.chooser.Choose(ctx, sources)
	if err != nil {
		return nil, apperror.ErrPickerFailed.WithError(err)
	}
	if !ok {
		s.logger.Debugw("source choice dismissed")
		return nil, nil
	}

	var (
		source picker.Source
		video  bool
	)
	switch chosen {
	case MediaSourceCamera:
		source, video = picker.SourceCamera, opts.VideoOnly
	case MediaSourceVideoGallery:
		source, video = picker.SourceGallery, true
	default:
		source, video = picker.SourceGallery, false
	}

	return s.SelectMedia(ctx, MediaOptions{
		Source:            source,
		Video:             video,
		IncludeDimensions: opts.IncludeDimensions,
		Prefix:            opts.Prefix,
	})
}

// SignaturePath computes the storage path for a captured signature image.
func (s *Selector) SignaturePath(prefix string) string {
	return s.paths.BuildSignature(s.prefix(prefix))
}

// Logger returns the logger in use.
func (s *Selector) Logger() *zap.SugaredLogger {
	return s.logger
}

// Notifier returns the notifier in use.
func (s *Selector) Notifier() notify.Notifier {
	return s.notifier
}

// Validator returns the UI-bound format validator.
func (s *Selector) Validator() *format.Validator {
	return s.validator
}

// PathBuilder returns the storage path builder.
func (s *Selector) PathBuilder() *storagepath.Builder {
	return s.paths
}

// prefix resolves the per-call prefix override against the configured
// default.
func (s *Selector) prefix(override string) string {
	if override != "" {
		return override
	}
	return s.config.Prefix
}

// localPath returns the item path on platforms that have one.
func (s *Selector) localPath(path string) string {
	if !s.config.Platform.HasLocalFilePath {
		return ""
	}
	return path
}
