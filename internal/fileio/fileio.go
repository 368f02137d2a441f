// Package fileio reads and writes whole text files through a ports.FileSystem,
// classifying every failure into a small closed set of kinds.
package fileio

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// FileMode is the permission used when Write creates a file.
const FileMode os.FileMode = 0644

// Read returns the complete UTF-8 content of name with "\r\n" and lone "\r"
// line endings converted to "\n".
// On failure the returned error is an *Error and no content is returned.
func Read(fsys ports.FileSystem, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", newError("read", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", newError("read", name, err)
	}
	if !utf8.Valid(data) {
		return "", newError("read", name, ErrNotUTF8)
	}
	return newlines.Replace(string(data)), nil
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Write creates or truncates name and writes content to it.
// The handle is closed on every path; a close error is reported when
// nothing failed before it.
func Write(fsys ports.FileSystem, name, content string) (err error) {
	w, err := fsys.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return newError("write", name, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = newError("write", name, cerr)
		}
	}()

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(content); err != nil {
		return newError("write", name, err)
	}
	if err := bw.Flush(); err != nil {
		return newError("write", name, err)
	}
	return nil
}

func newError(op, path string, err error) *Error {
	kind := classify(err)
	// A missing parent directory is an ordinary write failure.
	if op == "write" && kind == NotFound {
		kind = Unknown
	}
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}
