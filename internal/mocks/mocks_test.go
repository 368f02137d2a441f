package mocks

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"
)

func TestMockFileSystem(t *testing.T) {
	mockFS := NewMockFileSystem()

	// Test OpenFile and Open
	w, err := mockFS.OpenFile("/test/file.txt", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	io.WriteString(w, "hello")
	w.Close()

	f, err := mockFS.Open("/test/file.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	content, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("content = %q, expected %q", string(content), "hello")
	}

	// Test Stat after write
	info, err := mockFS.Stat("/test/file.txt")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("size = %d, expected 5", info.Size())
	}

	// Test Open for non-existent file
	_, err = mockFS.Open("/nonexistent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open error = %v, expected fs.ErrNotExist", err)
	}

	// Test error injection
	mockFS.Errors["/error/path"] = errors.New("injected error")
	_, err = mockFS.Open("/error/path")
	if err == nil || err.Error() != "injected error" {
		t.Errorf("Expected injected error, got: %v", err)
	}

	if len(mockFS.OpenFileCalls) != 1 || mockFS.OpenFileCalls[0] != "/test/file.txt" {
		t.Errorf("OpenFileCalls = %v, expected [/test/file.txt]", mockFS.OpenFileCalls)
	}
}

func TestMockFileSystemWriteError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.WriteErrors["/full.txt"] = errors.New("no space left on device")

	w, err := mockFS.OpenFile("/full.txt", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if _, err := io.WriteString(w, "data"); err == nil {
		t.Error("Write should fail with injected error")
	}
}

func TestMockPrompter(t *testing.T) {
	p := NewMockPrompter("a", "b")

	for _, want := range []string{"a", "b"} {
		got, err := p.Ask("? ")
		if err != nil {
			t.Fatalf("Ask failed: %v", err)
		}
		if got != want {
			t.Errorf("Ask = %q, expected %q", got, want)
		}
	}
	if _, err := p.Ask("? "); err != io.EOF {
		t.Errorf("Ask error = %v, expected io.EOF", err)
	}
	if len(p.Prompts) != 3 {
		t.Errorf("Prompts = %d, expected 3", len(p.Prompts))
	}
}
