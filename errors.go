package ftpkit

import (
	"errors"
	"fmt"
)

// Common connection and listing errors
var (
	ErrClosed       = errors.New("connection already closed")
	ErrNotExist     = errors.New("remote path does not exist")
	ErrPermission   = errors.New("permission denied")
	ErrEmptyPath    = errors.New("empty path")
	ErrNotSupported = errors.New("operation not supported")
)

// PathError records an error and the operation and remote path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsClosed reports whether an error indicates that the connection was
// already closed when the operation was attempted
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsNotExist reports whether an error indicates that a remote file or
// directory does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}
