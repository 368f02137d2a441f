// Package compare summarizes line-level differences between two texts.
package compare

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Summary counts lines by how they differ between old and new text.
type Summary struct {
	Added     int
	Removed   int
	Unchanged int
}

// Identical reports whether nothing was added or removed.
func (s Summary) Identical() bool {
	return s.Added == 0 && s.Removed == 0
}

func (s Summary) String() string {
	if s.Identical() {
		return "identical to the existing file"
	}
	return fmt.Sprintf("+%d -%d lines (%d unchanged)", s.Added, s.Removed, s.Unchanged)
}

// Summarize diffs oldText against newText line by line.
func Summarize(oldText, newText string) Summary {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var s Summary
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += n
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		case diffmatchpatch.DiffEqual:
			s.Unchanged += n
		}
	}
	return s
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
