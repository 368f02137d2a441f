// Package pipeline sequences filename prompts, reading, transforming and
// writing into a single run with overwrite protection.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/mcdonaldj/filemod/internal/compare"
	"github.com/mcdonaldj/filemod/internal/fileio"
	"github.com/mcdonaldj/filemod/internal/filename"
	"github.com/mcdonaldj/filemod/internal/logging"
	"github.com/mcdonaldj/filemod/internal/ports"
	"github.com/mcdonaldj/filemod/internal/transform"
)

// ErrDeclined is the cause of a run cancelled at the overwrite prompt.
var ErrDeclined = errors.New("overwrite declined")

const (
	inputQuestion  = "\nEnter the input filename: "
	outputQuestion = "\nEnter the output filename: "
)

// Pipeline runs read → transform → write against injected collaborators.
type Pipeline struct {
	FS     ports.FileSystem
	Prompt ports.Prompter
	Out    io.Writer
	Colors Palette

	// PreviewChars limits the content preview; <= 0 means transform.PreviewLimit.
	PreviewChars int
	// ShowDiff adds a line-diff summary to the overwrite prompt.
	ShowDiff bool

	// Input and Output, when set, are used instead of prompting.
	// They are still validated; a rejected preset falls back to prompting.
	Input  string
	Output string
	// AssumeYes accepts the overwrite prompt without asking.
	AssumeYes bool
}

// New creates a Pipeline with colored output and default preview settings.
func New(fsys ports.FileSystem, prompt ports.Prompter, out io.Writer) *Pipeline {
	return &Pipeline{
		FS:           fsys,
		Prompt:       prompt,
		Out:          out,
		Colors:       ColorPalette(),
		PreviewChars: transform.PreviewLimit,
		ShowDiff:     true,
	}
}

// run tracks the states of a single Run call.
type run struct {
	res Result
}

func (r *run) enter(s State) {
	r.res.State = s
	r.res.Trail = append(r.res.Trail, s)
}

func (r *run) end(s State, err error) Result {
	r.enter(s)
	r.res.Err = err
	return r.res
}

// Run executes one pass of the pipeline and reports the terminal state.
// Every failure has already been reported to Out when Run returns.
func (p *Pipeline) Run(ctx context.Context) Result {
	log := logging.FromContext(ctx)
	r := &run{}

	r.enter(AwaitInput)
	in, err := p.filename(p.Input, inputQuestion)
	if err != nil {
		return p.cancel(r, err)
	}
	r.res.Input = in
	if err := ctx.Err(); err != nil {
		return p.cancel(r, err)
	}

	r.enter(Reading)
	log.Debug("reading input", "file", in)
	content, err := fileio.Read(p.FS, in)
	if err != nil {
		log.Warn("read failed", "file", in, "kind", fileio.KindOf(err).String(), "err", err)
		fmt.Fprintln(p.Out, p.Colors.Red(ReadFailure(in, err)))
		return r.end(Failed, err)
	}
	fmt.Fprintf(p.Out, "%s Successfully read '%s'\n", p.Colors.Green("*"), filename.Sanitize(in))

	r.enter(Previewing)
	p.preview(content)

	r.enter(Transforming)
	modified := transform.Transform(content)
	log.Debug("transformed content", "lines", transform.LineCount(modified), "bytes", len(modified))

	r.enter(AwaitOutput)
	out, err := p.filename(p.Output, outputQuestion)
	if err != nil {
		return p.cancel(r, err)
	}
	r.res.Output = out
	if err := ctx.Err(); err != nil {
		return p.cancel(r, err)
	}

	if p.exists(log, out) {
		r.enter(ConfirmOverwrite)
		if !p.confirm(out, modified) {
			fmt.Fprintln(p.Out, "Operation cancelled.")
			return r.end(Cancelled, ErrDeclined)
		}
	}

	r.enter(Writing)
	log.Debug("writing output", "file", out)
	if err := fileio.Write(p.FS, out, modified); err != nil {
		log.Warn("write failed", "file", out, "kind", fileio.KindOf(err).String(), "err", err)
		fmt.Fprintln(p.Out, p.Colors.Red(WriteFailure(out, err)))
		return r.end(Failed, err)
	}
	fmt.Fprintf(p.Out, "%s Successfully wrote to '%s'\n", p.Colors.Green("*"), filename.Sanitize(out))
	fmt.Fprintf(p.Out, "\n%s Modified content written to '%s'\n", p.Colors.Green("Success!"), filename.Sanitize(out))

	if info, err := p.FS.Stat(out); err == nil {
		r.res.Size = info.Size()
		fmt.Fprintf(p.Out, "Output file size: %s bytes\n", p.Colors.Yellow(info.Size()))
	}
	return r.end(Done, nil)
}

// filename returns a validated preset, or prompts until one is entered.
func (p *Pipeline) filename(preset, question string) (string, error) {
	if preset != "" {
		name, err := filename.Validate(preset)
		if !errors.Is(err, filename.ErrRejected) {
			return name, err
		}
		fmt.Fprintf(p.Out, "%s '%s': %v\n", p.Colors.Yellow("!"), filename.Sanitize(preset), err)
	}
	return filename.Prompt(p.Prompt, p.Out, p.Colors.Yellow, question)
}

func (p *Pipeline) cancel(r *run, err error) Result {
	fmt.Fprintln(p.Out, "Exiting program.")
	return r.end(Cancelled, err)
}

func (p *Pipeline) preview(content string) {
	limit := p.PreviewChars
	if limit <= 0 {
		limit = transform.PreviewLimit
	}
	rule := strings.Repeat("-", 50)
	fmt.Fprintf(p.Out, "\n%s\n", p.Colors.Cyan(fmt.Sprintf("Original content preview (first %d chars):", limit)))
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, transform.Preview(content, limit))
	fmt.Fprintln(p.Out, rule)
}

// exists reports whether name is present. Stat failures other than
// "not exist" are treated as absent and surface later from the writer.
func (p *Pipeline) exists(log *slog.Logger, name string) bool {
	_, err := p.FS.Stat(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Debug("stat failed, assuming absent", "file", name, "err", err)
	}
	return err == nil
}

func (p *Pipeline) confirm(name, modified string) bool {
	if p.ShowDiff {
		if existing, err := fileio.Read(p.FS, name); err == nil {
			fmt.Fprintf(p.Out, "%s %s\n", p.Colors.Gray("Changes:"), compare.Summarize(existing, modified))
		}
	}
	if p.AssumeYes {
		return true
	}

	answer, err := p.Prompt.Ask(fmt.Sprintf("%s '%s' already exists. Overwrite? (y/n): ", p.Colors.Yellow("!"), filename.Sanitize(name)))
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// ReadFailure returns the one-line diagnostic for a failed fileio.Read of name.
func ReadFailure(name string, err error) string {
	name = filename.Sanitize(name)
	switch fileio.KindOf(err) {
	case fileio.NotFound:
		return fmt.Sprintf("Error: The file '%s' was not found.", name)
	case fileio.PermissionDenied:
		return fmt.Sprintf("Error: Permission denied to read '%s'.", name)
	case fileio.DecodeError:
		return fmt.Sprintf("Error: Could not decode the file '%s'. It might be a binary file.", name)
	}
	return fmt.Sprintf("Unexpected error reading '%s': %v", name, errors.Unwrap(err))
}

// WriteFailure returns the one-line diagnostic for a failed fileio.Write of name.
func WriteFailure(name string, err error) string {
	name = filename.Sanitize(name)
	if fileio.KindOf(err) == fileio.PermissionDenied {
		return fmt.Sprintf("Error: Permission denied to write to '%s'.", name)
	}
	return fmt.Sprintf("Unexpected error writing to '%s': %v", name, errors.Unwrap(err))
}
