package archive_extractor

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"

	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
	"github.com/packlift/go-archive-extractor/compression"
)

// tarArchiver walks a forward-only tar stream, optionally layered under a
// decompression codec. The codec layer has no entry concept of its own; tar
// headers still declare each entry's size before its content, so limits are
// enforced per entry before the body is read.
type tarArchiver struct {
	codec      compression.Codec
	compressed bool
}

func (ta tarArchiver) extract(data []byte, tracker *sizeTracker) ([]Entry, error) {
	var src io.Reader = bytes.NewReader(data)
	if ta.compressed {
		cReader, err := compression.NewReader(ta.codec, src)
		if err != nil {
			return nil, archiver_errors.New(err)
		}
		defer cReader.Close()
		src = cReader
	}
	tarReader := tar.NewReader(src)
	var entries []Entry
	for {
		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, archiver_errors.New(err)
		}
		if header.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		if err := tracker.admitEntry(); err != nil {
			return nil, err
		}
		if header.Typeflag == tar.TypeDir {
			entries = append(entries, Entry{Path: header.Name, IsDir: true})
			continue
		}
		// non-regular entries (symlinks and such) declare size 0 and come
		// out as empty files, same as any other size-0 entry
		if err := tracker.checkDeclared(header.Name, header.Size); err != nil {
			return nil, err
		}
		content, err := readDeclaredContent(tarReader, header.Name, header.Size)
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
