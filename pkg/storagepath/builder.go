// Package storagepath derives deterministic storage destination keys for
// picked media and files. Paths follow the shape
// {prefix}/{unix-microsecond-timestamp}[_{index}].{ext} which downstream
// persistence layers accept verbatim.
package storagepath

import (
	"fmt"
	"strings"
	"time"
)

// Clock provides the current time. Injectable so path generation is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default wall-clock implementation.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Builder computes storage paths from a prefix, source filename and media
// kind. It performs no I/O; the only ambient input is the clock.
type Builder struct {
	clock Clock
}

// NewBuilder creates a Builder using the given clock. A nil clock falls back
// to the system clock.
func NewBuilder(clock Clock) *Builder {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Builder{clock: clock}
}

// Build computes the storage path for a single-item selection.
func (b *Builder) Build(prefix, sourceName string, video bool) string {
	return fmt.Sprintf("%s/%d.%s", normalizePrefix(prefix), b.clock.Now().UnixMicro(), extension(sourceName, video))
}

// BuildAt computes the storage path for one member of a multi-item
// selection. The index disambiguates batch members picked within the same
// clock reading.
func (b *Builder) BuildAt(prefix, sourceName string, video bool, index int) string {
	return fmt.Sprintf("%s/%d_%d.%s", normalizePrefix(prefix), b.clock.Now().UnixMicro(), index, extension(sourceName, video))
}

// BuildSignature computes the storage path for a captured signature image.
// The extension is always png.
func (b *Builder) BuildSignature(prefix string) string {
	return fmt.Sprintf("%s/signature_%d.png", normalizePrefix(prefix), b.clock.Now().UnixMicro())
}

// normalizePrefix strips exactly one trailing separator. An empty prefix is
// returned as-is, which yields a leading-empty path segment; callers that
// care must supply a prefix.
func normalizePrefix(prefix string) string {
	return strings.TrimSuffix(prefix, "/")
}

// extension returns mp4 for videos, otherwise the substring after the last
// dot of the source name. A name without a dot is used whole as the
// extension; that degenerate shape is kept for compatibility with existing
// stored keys.
func extension(sourceName string, video bool) string {
	if video {
		return "mp4"
	}
	if i := strings.LastIndex(sourceName, "."); i >= 0 {
		return sourceName[i+1:]
	}
	return sourceName
}
