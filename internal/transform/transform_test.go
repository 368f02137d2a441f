package transform

import (
	"strings"
	"testing"
)

func TestTransformHelloWorld(t *testing.T) {
	got := Transform("hello\nworld")
	want := strings.Join([]string{
		"MODIFIED FILE CONTENT",
		strings.Repeat("=", 40),
		"",
		"  1. HELLO",
		"  2. WORLD",
		"",
		strings.Repeat("=", 40),
		"End of modified content",
	}, "\n")

	if got != want {
		t.Errorf("Transform mismatch:\ngot:\n%s\nexpected:\n%s", got, want)
	}
}

func TestTransformEmpty(t *testing.T) {
	got := Transform("")
	lines := strings.Split(got, "\n")

	if len(lines) != 7 {
		t.Fatalf("lines = %d, expected 7", len(lines))
	}
	if lines[3] != "  1. " {
		t.Errorf("annotated line = %q, expected %q", lines[3], "  1. ")
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("result should not end with a newline")
	}
}

func TestTransformTrailingNewline(t *testing.T) {
	got := Transform("one\n")
	if !strings.Contains(got, "  1. ONE\n  2. \n") {
		t.Errorf("trailing newline should yield an empty second line:\n%s", got)
	}
}

func TestTransformDeterministic(t *testing.T) {
	in := "alpha\nBeta\n\tgamma ß"
	if Transform(in) != Transform(in) {
		t.Error("Transform should be deterministic")
	}
}

func TestTransformLineCount(t *testing.T) {
	inputs := []string{"", "x", "a\nb", "\n\n\n", "one\r\ntwo\r\n"}
	for _, in := range inputs {
		segments := len(strings.Split(in, "\n"))
		if got := LineCount(Transform(in)); got != segments {
			t.Errorf("LineCount(Transform(%q)) = %d, expected %d", in, got, segments)
		}
	}
}

func TestTransformWideNumbers(t *testing.T) {
	in := strings.Repeat("x\n", 1000) + "last"
	lines := strings.Split(Transform(in), "\n")

	if lines[3+8] != "  9. X" {
		t.Errorf("line 9 = %q", lines[3+8])
	}
	if lines[3+99] != "100. X" {
		t.Errorf("line 100 = %q", lines[3+99])
	}
	if lines[3+1000] != "1001. LAST" {
		t.Errorf("line 1001 = %q, width should grow past three digits", lines[3+1000])
	}
}

func TestTransformUnicodeUpper(t *testing.T) {
	tests := map[string]string{
		"café":   "  1. CAFÉ",
		"straße": "  1. STRASSE",
	}
	for in, want := range tests {
		if got := Transform(in); !strings.Contains(got, want) {
			t.Errorf("Transform(%q) missing %q:\n%s", in, want, got)
		}
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Preview(long, PreviewLimit)
	if got != strings.Repeat("a", 200)+"..." {
		t.Errorf("Preview length = %d, expected 203", len(got))
	}

	exact := strings.Repeat("b", 200)
	if Preview(exact, PreviewLimit) != exact {
		t.Error("content at the limit should not be truncated")
	}

	// Limits count characters, not bytes
	runes := strings.Repeat("é", 201)
	if got := Preview(runes, PreviewLimit); got != strings.Repeat("é", 200)+"..." {
		t.Errorf("Preview should cut on characters, got %d bytes", len(got))
	}
}
