package archive_extractor

import (
	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
	"github.com/packlift/go-archive-extractor/compression"
)

// Format identifies the container or codec the input bytes are declared to
// be. The extractor trusts the caller-supplied format and performs no content
// sniffing; a wrong format surfaces as a decode failure from the matching
// adapter.
type Format int

const (
	Zip Format = iota
	Tar
	TarGz
	TarBz2
	TarXz
	TarZst
	TarLz4
	SevenZip
	Ar
	Gz
	Bz2
	Xz
	Lz4
	Zst
)

var formatNames = map[Format]string{
	Zip:      "ZIP",
	Tar:      "TAR",
	TarGz:    "TAR.GZ",
	TarBz2:   "TAR.BZ2",
	TarXz:    "TAR.XZ",
	TarZst:   "TAR.ZST",
	TarLz4:   "TAR.LZ4",
	SevenZip: "7Z",
	Ar:       "AR",
	Gz:       "GZIP",
	Bz2:      "BZIP2",
	Xz:       "XZ",
	Lz4:      "LZ4",
	Zst:      "ZSTD",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// The compressed tar composites and AR have no registered media type and are
// deliberately absent from both maps.
var formatMediaTypes = map[Format]string{
	Zip:      "application/zip",
	Tar:      "application/x-tar",
	SevenZip: "application/x-7z-compressed",
	Gz:       "application/gzip",
	Bz2:      "application/x-bzip2",
	Xz:       "application/x-xz",
	Lz4:      "application/x-lz4",
	Zst:      "application/zstd",
}

// MediaType returns the media type registered for the format, or an
// UnsupportedError for formats without one.
func (f Format) MediaType() (string, error) {
	if mt, ok := formatMediaTypes[f]; ok {
		return mt, nil
	}
	return "", &archiver_errors.UnsupportedError{Reason: "no media type for format " + f.String()}
}

// FormatByMediaType resolves a media type back to its format.
func FormatByMediaType(mediaType string) (Format, error) {
	for f, mt := range formatMediaTypes {
		if mt == mediaType {
			return f, nil
		}
	}
	return 0, &archiver_errors.UnsupportedError{Reason: "no format for media type " + mediaType}
}

// codec maps a format to the compression codec layered under or around it.
// Only meaningful for the compressed tar composites and the single-stream
// formats.
func (f Format) codec() compression.Codec {
	switch f {
	case TarGz, Gz:
		return compression.Gzip
	case TarBz2, Bz2:
		return compression.Bzip2
	case TarXz, Xz:
		return compression.Xz
	case TarZst, Zst:
		return compression.Zstd
	case TarLz4, Lz4:
		return compression.Lz4
	}
	return compression.Gzip
}
