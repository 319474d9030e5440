package archive_extractor

// Entry is one extracted path from a container. Paths are kept exactly as the
// container recorded them, in container order, and are not guaranteed unique;
// callers needing a map must deduplicate themselves.
//
// Directory entries never carry content. For single-stream codecs the one
// returned entry holds the entire decoded payload.
type Entry struct {
	Path  string
	Data  []byte
	IsDir bool
}
