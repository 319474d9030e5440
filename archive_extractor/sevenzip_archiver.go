package archive_extractor

import (
	"bytes"

	"github.com/bodgit/sevenzip"
	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
)

// sevenZipArchiver walks a 7z container in a single forward pass. For every
// entry the declared size is checked, the content materialized and the
// realized size re-validated before the next entry is touched; there is no
// metadata-only first pass and no re-open of the container.
type sevenZipArchiver struct{}

func (sa sevenZipArchiver) extract(data []byte, tracker *sizeTracker) ([]Entry, error) {
	reader, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, archiver_errors.New(err)
	}
	var entries []Entry
	for _, file := range reader.File {
		if err := tracker.admitEntry(); err != nil {
			return nil, err
		}
		info := file.FileInfo()
		if info.IsDir() {
			entries = append(entries, Entry{Path: file.Name, IsDir: true})
			continue
		}
		declared := info.Size()
		if err := tracker.checkDeclared(file.Name, declared); err != nil {
			return nil, err
		}
		content, err := sa.readEntry(file, declared)
		if err != nil {
			return nil, err
		}
		if err := tracker.commit(int64(len(content))); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: file.Name, Data: content})
	}
	return entries, nil
}

func (sa sevenZipArchiver) readEntry(file *sevenzip.File, declared int64) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, archiver_errors.New(err)
	}
	defer rc.Close()
	return readDeclaredContent(rc, file.Name, declared)
}
