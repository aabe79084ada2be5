package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for adapter failures.
var (
	ErrMalformedCube     = errors.New("malformed cube file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidJob        = errors.New("invalid job file")
	ErrWrite             = errors.New("write failed")
)

// OpError wraps an underlying error with the operation and file it concerns.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}

	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
