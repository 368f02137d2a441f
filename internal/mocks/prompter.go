package mocks

import (
	"io"

	"github.com/mcdonaldj/filemod/internal/ports"
)

// MockPrompter implements ports.Prompter by replaying scripted answers.
type MockPrompter struct {
	// Answers are returned in order; io.EOF once exhausted
	Answers []string
	// Prompts records every prompt asked
	Prompts []string
}

// NewMockPrompter creates a prompter that replays answers.
func NewMockPrompter(answers ...string) *MockPrompter {
	return &MockPrompter{Answers: answers}
}

// Ask records prompt and returns the next scripted answer.
func (m *MockPrompter) Ask(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if len(m.Answers) == 0 {
		return "", io.EOF
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}

// Compile-time check that MockPrompter implements ports.Prompter.
var _ ports.Prompter = (*MockPrompter)(nil)
