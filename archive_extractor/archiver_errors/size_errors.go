package archiver_errors

import (
	"errors"
	"fmt"
)

// EntrySizeLimitError reports a single entry whose declared or realized
// content length exceeds the per-entry ceiling.
type EntrySizeLimitError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e EntrySizeLimitError) Error() string {
	return fmt.Sprintf("entry %q too large: %d bytes exceeds limit of %d bytes", e.Path, e.Size, e.Limit)
}

// TotalSizeLimitError reports that the running total of extracted bytes would
// pass the aggregate ceiling. Total carries the projected total at the point
// of rejection.
type TotalSizeLimitError struct {
	Total int64
	Limit int64
}

func (e TotalSizeLimitError) Error() string {
	return fmt.Sprintf("total extraction size %d bytes exceeds limit of %d bytes", e.Total, e.Limit)
}

// SizeMismatchError reports a container whose metadata declared one size but
// whose content decoded to another. Realized is the byte count actually
// produced before the mismatch was detected.
type SizeMismatchError struct {
	Path     string
	Declared int64
	Realized int64
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("invalid archive: entry %q declared %d bytes but decoded %d bytes", e.Path, e.Declared, e.Realized)
}

// UnsupportedError reports a format tag or embedded feature with no decode
// path, such as an encrypted entry or a missing media-type mapping.
type UnsupportedError struct {
	Reason string
}

func (e UnsupportedError) Error() string {
	return "unsupported: " + e.Reason
}

func IsEntrySizeLimit(err error) bool {
	var target *EntrySizeLimitError
	return errors.As(err, &target)
}

func IsTotalSizeLimit(err error) bool {
	var target *TotalSizeLimitError
	return errors.As(err, &target)
}

func IsSizeMismatch(err error) bool {
	var target *SizeMismatchError
	return errors.As(err, &target)
}

func IsUnsupported(err error) bool {
	var target *UnsupportedError
	return errors.As(err, &target)
}
