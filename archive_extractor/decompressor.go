package archive_extractor

import (
	"bytes"

	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
	"github.com/packlift/go-archive-extractor/compression"
)

// DefaultEntryName is the path assigned to the single entry produced from a
// bare compressed stream, used when the codec records no original file name.
const DefaultEntryName = "decompressed"

// decompressor handles the bare single-stream codecs. Those formats carry no
// size metadata at all, so there is nothing to pre-check: the stream is
// decoded into a buffer capped just past the per-entry limit and the realized
// length is validated the moment decoding stops. Peak memory is therefore
// bounded by maxEntrySize plus one byte, an accepted trade-off for formats
// that cannot be pre-checked.
type decompressor struct {
	codec compression.Codec
}

func (dc decompressor) extract(data []byte, tracker *sizeTracker) ([]Entry, error) {
	cReader, err := compression.NewReader(dc.codec, bytes.NewReader(data))
	if err != nil {
		return nil, archiver_errors.New(err)
	}
	defer cReader.Close()
	if err := tracker.admitEntry(); err != nil {
		return nil, err
	}
	name := cReader.EmbeddedName()
	if name == "" {
		name = DefaultEntryName
	}
	content, err := readAtMost(cReader, tracker.maxEntrySize)
	if err != nil {
		return nil, archiver_errors.NewProcessError(name, err)
	}
	if int64(len(content)) > tracker.maxEntrySize {
		return nil, &archiver_errors.EntrySizeLimitError{
			Path:  name,
			Size:  int64(len(content)),
			Limit: tracker.maxEntrySize,
		}
	}
	if err := tracker.commit(int64(len(content))); err != nil {
		return nil, err
	}
	return []Entry{{Path: name, Data: content}}, nil
}
