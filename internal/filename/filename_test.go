package filename

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mcdonaldj/filemod/internal/mocks"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"report.txt", "report.txt", nil},
		{"  report.txt \t", "report.txt", nil},
		{"my notes.md", "my notes.md", nil},
		{"quit", "", ErrCancelled},
		{"EXIT", "", ErrCancelled},
		{" Q ", "", ErrCancelled},
		{"", "", ErrEmpty},
		{"   \t ", "", ErrEmpty},
		{"a<b.txt", "", ErrInvalidChars},
		{"dir/file.txt", "", ErrInvalidChars},
		{`c:\x`, "", ErrInvalidChars},
		{"what?.txt", "", ErrInvalidChars},
		{"quitter.txt", "quitter.txt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Validate(tt.raw)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("Validate(%q) error = %v, expected %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %q, expected %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRejectionsWrapErrRejected(t *testing.T) {
	for _, err := range []error{ErrEmpty, ErrInvalidChars} {
		if !errors.Is(err, ErrRejected) {
			t.Errorf("%v should wrap ErrRejected", err)
		}
	}
	if errors.Is(ErrCancelled, ErrRejected) {
		t.Error("ErrCancelled must not be a rejection")
	}
}

func TestPromptRetriesUntilValid(t *testing.T) {
	p := mocks.NewMockPrompter("", "a<b.txt", "  report.txt  ")
	out := &bytes.Buffer{}

	name, err := Prompt(p, out, fmt.Sprint, "Enter the input filename: ")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if name != "report.txt" {
		t.Errorf("name = %q, expected %q", name, "report.txt")
	}
	if len(p.Prompts) != 3 {
		t.Errorf("asked %d times, expected 3", len(p.Prompts))
	}
	if !strings.Contains(out.String(), "Please enter a filename.") {
		t.Errorf("output missing empty warning: %q", out.String())
	}
	if !strings.Contains(out.String(), "invalid characters") {
		t.Errorf("output missing invalid-character warning: %q", out.String())
	}
}

func TestPromptCancel(t *testing.T) {
	p := mocks.NewMockPrompter("", "quit", "never-read.txt")

	_, err := Prompt(p, &bytes.Buffer{}, fmt.Sprint, "> ")
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, expected ErrCancelled", err)
	}
	if len(p.Answers) != 1 {
		t.Errorf("remaining answers = %d, expected 1", len(p.Answers))
	}
}

func TestPromptEOFCancels(t *testing.T) {
	_, err := Prompt(mocks.NewMockPrompter(), &bytes.Buffer{}, fmt.Sprint, "> ")
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, expected ErrCancelled", err)
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"report.txt":       "report.txt",
		"evil\x1b[31m.txt": "evil?[31m.txt",
		"tab\there":        "tab?here",
		"del\x7f":          "del?",
		"ünïcode.txt":      "ünïcode.txt",
	}
	for in, want := range tests {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, expected %q", in, got, want)
		}
	}
}
