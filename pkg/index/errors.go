package index

import (
	"errors"
	"fmt"
)

// Indexing failure conditions. Both abort the scan for the unscanned tail;
// the scanned prefix of the index is always preserved.
var (
	ErrTruncatedLength     = errors.New("truncated or malformed record length")
	ErrInvalidRecordLength = errors.New("invalid record length")
)

// BuildError wraps an indexing failure with the byte offset of the record
// start where the scan stopped.
type BuildError struct {
	Err    error
	Offset int64
	Detail string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func buildErr(sentinel error, offset int64, format string, args ...interface{}) error {
	return &BuildError{
		Err:    sentinel,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}
