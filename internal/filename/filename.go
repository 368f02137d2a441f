// Package filename validates user-supplied filenames before they reach the filesystem.
package filename

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// InvalidChars lists characters that may not appear in a filename.
const InvalidChars = `<>:"/\|?*`

// Sentinel errors returned by Validate.
var (
	// ErrCancelled is returned when the input is a quit sentinel.
	ErrCancelled = errors.New("cancelled by user")

	// ErrRejected is the parent of every recoverable validation failure.
	ErrRejected = errors.New("filename rejected")

	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = fmt.Errorf("%w: please enter a filename", ErrRejected)

	// ErrInvalidChars is returned when the input contains a character from InvalidChars.
	ErrInvalidChars = fmt.Errorf("%w: filename contains invalid characters, avoid: %s", ErrRejected, InvalidChars)
)

var cancelWords = map[string]bool{"quit": true, "exit": true, "q": true}

// Validate trims raw and returns it as a usable filename.
func Validate(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if cancelWords[strings.ToLower(name)] {
		return "", ErrCancelled
	}
	if name == "" {
		return "", ErrEmpty
	}
	if strings.ContainsAny(name, InvalidChars) {
		return "", ErrInvalidChars
	}
	return name, nil
}

// Prompt asks question until p yields a valid filename or a cancel sentinel.
// Each rejection is reported to out through warn before asking again.
// Running out of input counts as cancellation.
func Prompt(p ports.Prompter, out io.Writer, warn func(a ...interface{}) string, question string) (string, error) {
	for {
		raw, err := p.Ask(question)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrCancelled
			}
			return "", err
		}

		name, err := Validate(raw)
		if errors.Is(err, ErrRejected) {
			fmt.Fprintln(out, warn(message(err)))
			continue
		}
		return name, err
	}
}

func message(err error) string {
	switch {
	case errors.Is(err, ErrEmpty):
		return "Please enter a filename."
	case errors.Is(err, ErrInvalidChars):
		return "Filename contains invalid characters. Avoid: " + InvalidChars
	}
	return err.Error()
}

// Sanitize replaces control characters (runes < 0x20 or == 0x7F) with '?'
// so a filename can be echoed without injecting terminal escapes.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}
