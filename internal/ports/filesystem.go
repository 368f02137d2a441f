// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem abstracts the filesystem operations the pipeline needs.
// Production code uses the osfs adapter; tests use MockFileSystem.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// OpenFile opens the named file for writing with the given flags.
	// The caller owns the returned handle and must close it.
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)

	// Stat returns file info for the named file.
	Stat(name string) (os.FileInfo, error)
}
