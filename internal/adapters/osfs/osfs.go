// Package osfs provides a filesystem adapter using the standard library os package.
package osfs

import (
	"io"
	"io/fs"
	"os"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// OSFileSystem implements ports.FileSystem using the standard library.
type OSFileSystem struct{}

// New creates a new OSFileSystem adapter.
func New() *OSFileSystem {
	return &OSFileSystem{}
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// OpenFile opens the named file for writing with the given flags.
func (f *OSFileSystem) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat returns file info for the named file.
func (f *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Compile-time check that OSFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*OSFileSystem)(nil)
