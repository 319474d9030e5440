package archive_extractor

import (
	"bytes"
	"errors"
	"io"

	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
)

// ErrTooManyEntries is returned when an archive holds more entries than the
// configured cap.
var ErrTooManyEntries = errors.New("too many entries in archive")

// sizeTracker holds the limits and the running total for one Extract call.
// It is never shared between calls.
type sizeTracker struct {
	maxEntrySize int64
	maxTotalSize int64
	maxEntries   int

	entries int
	total   int64
}

func (st *sizeTracker) admitEntry() error {
	st.entries++
	if st.maxEntries > 0 && st.entries > st.maxEntries {
		return ErrTooManyEntries
	}
	return nil
}

// checkDeclared validates a declared entry size against the per-entry limit
// and the projected running total against the aggregate limit, before any
// buffer for the entry is allocated. It does not advance the total.
func (st *sizeTracker) checkDeclared(path string, size int64) error {
	if size > st.maxEntrySize {
		return &archiver_errors.EntrySizeLimitError{Path: path, Size: size, Limit: st.maxEntrySize}
	}
	if st.total+size > st.maxTotalSize {
		return &archiver_errors.TotalSizeLimitError{Total: st.total + size, Limit: st.maxTotalSize}
	}
	return nil
}

// commit adds realized bytes to the running total. The realized length for
// declared-size entries already passed checkDeclared, so commit only fails on
// the single-stream path where no declared size existed.
func (st *sizeTracker) commit(n int64) error {
	st.total += n
	if st.total > st.maxTotalSize {
		return &archiver_errors.TotalSizeLimitError{Total: st.total, Limit: st.maxTotalSize}
	}
	return nil
}

// readDeclaredContent materializes the content of an entry whose container
// declared its size up front. checkDeclared must have passed already. It
// reads one byte past the declared size so a stream that decodes to more than
// its metadata claims is caught, and surfaces any declared/realized
// disagreement as a SizeMismatchError.
func readDeclaredContent(r io.Reader, path string, declared int64) ([]byte, error) {
	content, err := readAtMost(r, declared)
	if err != nil {
		return nil, archiver_errors.NewProcessError(path, err)
	}
	if int64(len(content)) != declared {
		return nil, &archiver_errors.SizeMismatchError{
			Path:     path,
			Declared: declared,
			Realized: int64(len(content)),
		}
	}
	return content, nil
}

// readAtMost reads until EOF or until limit+1 bytes have arrived, whichever
// comes first. Returning limit+1 bytes tells the caller the stream was bigger
// than allowed without decoding the rest of it.
func readAtMost(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(io.LimitReader(r, limit+1)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
