package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for input on the controlling terminal. Every
// interactive question in the system shares the same bounded retry policy.
type Prompter interface {
	// PromptWithRetry asks until validate accepts the answer or the shared
	// attempt bound is exhausted, in which case it returns
	// *RetriesExceededError.
	PromptWithRetry(prompt, invalidMsg string, validate func(answer string) (value string, ok bool)) (string, error)

	// Confirm asks once and reports whether the answer matches token exactly.
	Confirm(prompt, token string) (bool, error)
}

type RetriesExceededError struct {
	Attempts int
}

func (e *RetriesExceededError) Error() string {
	return fmt.Sprintf("no valid answer after %d attempts", e.Attempts)
}

type consolePrompter struct {
	in          *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

func NewConsolePrompter(in io.Reader, out io.Writer, maxAttempts int) Prompter {
	return &consolePrompter{
		in:          bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

func (p *consolePrompter) PromptWithRetry(prompt, invalidMsg string, validate func(string) (string, bool)) (string, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		answer, err := p.readAnswer(prompt)
		if err != nil {
			return "", err
		}

		if value, ok := validate(answer); ok {
			return value, nil
		}

		fmt.Fprintln(p.out, invalidMsg)
	}

	return "", &RetriesExceededError{Attempts: p.maxAttempts}
}

func (p *consolePrompter) Confirm(prompt, token string) (bool, error) {
	answer, err := p.readAnswer(prompt)
	if err != nil {
		return false, err
	}
	return answer == token, nil
}

func (p *consolePrompter) readAnswer(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
