package marc

import (
	"errors"
	"fmt"
)

// Decode failure conditions. Each sentinel matches with errors.Is even when
// the returned error carries an offset.
var (
	ErrInvalidLeader           = errors.New("invalid leader")
	ErrDirectoryCorrupt        = errors.New("directory corrupt")
	ErrFieldTerminatorMissing  = errors.New("field terminator missing")
	ErrRecordTerminatorMissing = errors.New("record terminator missing")
)

// DecodeError wraps a decode failure condition with the byte offset, relative
// to the start of the record, where it was detected.
type DecodeError struct {
	Err    error
	Offset int64
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(sentinel error, offset int, format string, args ...interface{}) error {
	return &DecodeError{
		Err:    sentinel,
		Offset: int64(offset),
		Detail: fmt.Sprintf(format, args...),
	}
}
