package archive_extractor

import (
	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
)

const (
	// DefaultMaxEntrySize caps a single extracted entry at 100 MiB.
	DefaultMaxEntrySize int64 = 100 * 1024 * 1024
	// DefaultMaxTotalSize caps one extraction call at 1 GiB of output.
	DefaultMaxTotalSize int64 = 1024 * 1024 * 1024
)

// Extractor materializes the contents of an archive fully in memory while
// enforcing per-entry and aggregate size ceilings. An Extractor is immutable
// after construction and safe for concurrent use; each Extract call owns its
// own running total.
type Extractor struct {
	maxEntrySize int64
	maxTotalSize int64
	maxEntries   int
}

type Option func(*Extractor)

// WithMaxEntrySize overrides the per-entry ceiling, in bytes.
func WithMaxEntrySize(size int64) Option {
	return func(ex *Extractor) {
		ex.maxEntrySize = size
	}
}

// WithMaxTotalSize overrides the aggregate ceiling, in bytes.
func WithMaxTotalSize(size int64) Option {
	return func(ex *Extractor) {
		ex.maxTotalSize = size
	}
}

// WithMaxNumberOfEntries caps how many entries one archive may hold. Zero,
// the default, means unlimited.
func WithMaxNumberOfEntries(count int) Option {
	return func(ex *Extractor) {
		ex.maxEntries = count
	}
}

func New(options ...Option) *Extractor {
	ex := &Extractor{
		maxEntrySize: DefaultMaxEntrySize,
		maxTotalSize: DefaultMaxTotalSize,
	}
	for _, option := range options {
		option(ex)
	}
	return ex
}

// archiver is the per-format adapter contract. Implementations walk their
// container exactly once, checking declared sizes against the tracker before
// decoding where the format records them, and re-validating realized sizes
// after decoding in every case.
type archiver interface {
	extract(data []byte, tracker *sizeTracker) ([]Entry, error)
}

// Extract decodes data as the given format and returns every entry the
// container declares, in container order. Any structural problem, size limit
// violation or codec failure aborts the whole call; no partial results are
// returned.
func (ex *Extractor) Extract(data []byte, format Format) ([]Entry, error) {
	tracker := &sizeTracker{
		maxEntrySize: ex.maxEntrySize,
		maxTotalSize: ex.maxTotalSize,
		maxEntries:   ex.maxEntries,
	}
	var a archiver
	switch format {
	case Zip:
		a = zipArchiver{}
	case Tar:
		a = tarArchiver{}
	case TarGz, TarBz2, TarXz, TarZst, TarLz4:
		a = tarArchiver{codec: format.codec(), compressed: true}
	case SevenZip:
		a = sevenZipArchiver{}
	case Ar:
		a = arArchiver{}
	case Gz, Bz2, Xz, Lz4, Zst:
		a = decompressor{codec: format.codec()}
	default:
		return nil, &archiver_errors.UnsupportedError{Reason: "unknown format tag"}
	}
	return a.extract(data, tracker)
}
