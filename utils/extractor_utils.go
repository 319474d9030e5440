package utils

import "strings"

const (
	FolderSuffix string = "/"
)

// IsFolder reports whether an archive entry name denotes a directory. Both
// zip and 7z record directories with a trailing slash.
func IsFolder(path string) bool {
	return strings.HasSuffix(path, FolderSuffix)
}
