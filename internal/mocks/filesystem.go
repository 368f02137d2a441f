// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// MockFileSystem implements ports.FileSystem for testing.
type MockFileSystem struct {
	// Files maps paths to file contents
	Files map[string][]byte
	// Errors maps paths to errors returned by Open/OpenFile/Stat
	Errors map[string]error
	// WriteErrors maps paths to errors returned while writing to an opened handle
	WriteErrors map[string]error
	// OpenFileCalls records every path passed to OpenFile, in order
	OpenFileCalls []string
}

// NewMockFileSystem creates a new mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Errors:      make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

// Open opens the named file for reading.
func (m *MockFileSystem) Open(name string) (fs.File, error) {
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	content, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &mockFile{name: name, r: bytes.NewReader(content), size: int64(len(content))}, nil
}

// OpenFile opens the named file for writing. Content is committed on Close.
func (m *MockFileSystem) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	m.OpenFileCalls = append(m.OpenFileCalls, name)
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	w := &mockWriter{fs: m, name: name, err: m.WriteErrors[name]}
	if flag&os.O_TRUNC != 0 || m.Files[name] == nil {
		m.Files[name] = []byte{}
	}
	return w, nil
}

// Stat returns file info for the named file.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if content, ok := m.Files[name]; ok {
		return &mockFileInfo{name: filepath.Base(name), size: int64(len(content))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// mockFileInfo implements os.FileInfo for testing.
type mockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// mockFile implements fs.File for testing.
type mockFile struct {
	name string
	r    *bytes.Reader
	size int64
}

func (f *mockFile) Stat() (fs.FileInfo, error) {
	return &mockFileInfo{name: filepath.Base(f.name), size: f.size}, nil
}

func (f *mockFile) Read(p []byte) (int, error) { return f.r.Read(p) }

func (f *mockFile) Close() error { return nil }

// mockWriter buffers writes and stores them in the owning MockFileSystem on Close.
type mockWriter struct {
	fs   *MockFileSystem
	name string
	buf  bytes.Buffer
	err  error
}

func (w *mockWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

func (w *mockWriter) Close() error {
	w.fs.Files[w.name] = append(w.fs.Files[w.name], w.buf.Bytes()...)
	return nil
}

// Compile-time check that MockFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*MockFileSystem)(nil)
