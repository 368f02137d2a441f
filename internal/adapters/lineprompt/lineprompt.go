// Package lineprompt provides a line-based Prompter over an io.Reader.
package lineprompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// LinePrompter writes prompts to Out and reads answers line by line from In.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a LinePrompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask writes prompt and returns the next line of input.
// A final line without a terminator is returned as-is; io.EOF is returned
// only when nothing was read.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Compile-time check that LinePrompter implements ports.Prompter.
var _ ports.Prompter = (*LinePrompter)(nil)
