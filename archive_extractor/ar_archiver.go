package archive_extractor

import (
	"bytes"
	"errors"
	"io"

	"github.com/blakesmith/ar"
	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
)

// arArchiver walks a POSIX ar archive (the container behind .deb packages and
// static libraries). Every record carries its size in a fixed-format header
// read before the body, so enforcement works exactly like the tar adapter's.
// The format has no directory entries.
type arArchiver struct{}

func (aa arArchiver) extract(data []byte, tracker *sizeTracker) ([]Entry, error) {
	reader := ar.NewReader(bytes.NewReader(data))
	var entries []Entry
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, archiver_errors.New(err)
		}
		if err := tracker.admitEntry(); err != nil {
			return nil, err
		}
		if err := tracker.checkDeclared(header.Name, header.Size); err != nil {
			return nil, err
		}
		content, err := readDeclaredContent(reader, header.Name, header.Size)
		if err != nil {
			return nil, err
		}
		if err := tracker.commit(int64(len(content))); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: header.Name, Data: content})
	}
	return entries, nil
}
