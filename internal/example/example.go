// Package example runs a non-interactive demonstration of the pipeline:
// it writes a sample file, reads it back, transforms it and writes the result.
package example

import (
	"context"
	"fmt"

	"github.com/mcdonaldj/filemod/internal/fileio"
	"github.com/mcdonaldj/filemod/internal/logging"
	"github.com/mcdonaldj/filemod/internal/ports"
	"github.com/mcdonaldj/filemod/internal/transform"
)

// Sample is the content written to the demonstration input file.
const Sample = `Hello, World!
This is a test file.
Go file handling is powerful!
We can read, modify, and write files.
Error handling makes our code robust.`

// Result reports the files touched by a demonstration run.
type Result struct {
	Input  string
	Output string
	Lines  int
}

// Run writes Sample to input, then transforms it into output.
// Both files are overwritten without confirmation.
func Run(ctx context.Context, fsys ports.FileSystem, input, output string) (Result, error) {
	log := logging.FromContext(ctx)
	res := Result{Input: input, Output: output}

	if err := fileio.Write(fsys, input, Sample); err != nil {
		return res, fmt.Errorf("writing sample: %w", err)
	}
	log.Debug("wrote sample", "file", input)

	content, err := fileio.Read(fsys, input)
	if err != nil {
		return res, fmt.Errorf("reading sample: %w", err)
	}

	modified := transform.Transform(content)
	if err := fileio.Write(fsys, output, modified); err != nil {
		return res, fmt.Errorf("writing result: %w", err)
	}
	res.Lines = transform.LineCount(modified)
	log.Debug("wrote example result", "file", output, "lines", res.Lines)

	return res, nil
}
