package archiver_errors

// ArchiverError wraps a structural failure from an underlying format reader:
// bad magic bytes, a truncated header, a corrupt index. The original message
// is preserved for callers that match on it.
type ArchiverError struct {
	err error
}

func New(err error) *ArchiverError {
	return &ArchiverError{err: err}
}

func (ae ArchiverError) Error() string {
	return ae.err.Error()
}

func (ae ArchiverError) Unwrap() error {
	return ae.err
}
