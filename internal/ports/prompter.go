package ports

// Prompter asks the user a question and returns one raw line of input.
// Production code uses the lineprompt adapter; tests use MockPrompter.
type Prompter interface {
	// Ask writes prompt and returns the answer without its line terminator.
	// io.EOF is returned when no more input is available.
	Ask(prompt string) (string, error)
}
