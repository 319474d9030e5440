package archive_extractor

import (
	"archive/zip"
	"bytes"

	"github.com/packlift/go-archive-extractor/archive_extractor/archiver_errors"
	"github.com/packlift/go-archive-extractor/utils"
)

// general-purpose bit 0 marks an encrypted entry
const zipEncryptedFlag = 0x1

// zipArchiver walks a ZIP central directory. The index records every entry's
// uncompressed size, so both limits are enforced before a single content byte
// is inflated.
type zipArchiver struct{}

func (za zipArchiver) extract(data []byte, tracker *sizeTracker) ([]Entry, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, archiver_errors.New(err)
	}
	var entries []Entry
	for _, file := range reader.File {
		if err := tracker.admitEntry(); err != nil {
			return nil, err
		}
		if utils.IsFolder(file.Name) {
			entries = append(entries, Entry{Path: file.Name, IsDir: true})
			continue
		}
		if file.Flags&zipEncryptedFlag != 0 {
			return nil, &archiver_errors.UnsupportedError{Reason: "encrypted zip entry " + file.Name}
		}
		declared := int64(file.UncompressedSize64)
		if err := tracker.checkDeclared(file.Name, declared); err != nil {
			return nil, err
		}
		content, err := za.readEntry(file, declared)
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

func (za zipArchiver) readEntry(file *zip.File, declared int64) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, archiver_errors.New(err)
	}
	defer rc.Close()
	return readDeclaredContent(rc, file.Name, declared)
}
