package archiver_errors

import "fmt"

// ProcessError wraps a failure reading one entry's content out of an archive
// stream, keeping the entry path for context.
type ProcessError struct {
	path string
	err  error
}

func NewProcessError(path string, err error) *ProcessError {
	return &ProcessError{path: path, err: err}
}

func (pe ProcessError) Error() string {
	return fmt.Sprintf("Failed to process entry:%s err:%s", pe.path, pe.err.Error())
}

func (pe ProcessError) Unwrap() error {
	return pe.err
}
