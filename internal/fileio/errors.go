package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a read or write failure.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	PermissionDenied
	DecodeError
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case DecodeError:
		return "decode error"
	default:
		return "unknown"
	}
}

// ErrNotUTF8 is the underlying error of a DecodeError.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// Error is returned by Read and Write. Op is "read" or "write".
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or Unknown if err is not an *Error.
func KindOf(err error) Kind {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Kind
	}
	return Unknown
}

// classify maps a native filesystem error onto the closed Kind set.
func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, ErrNotUTF8):
		return DecodeError
	default:
		return Unknown
	}
}
