// ABOUTME: Line-based prompts with reject-and-reprompt validation.
// ABOUTME: Used when stdin is not a terminal and as the pause implementation everywhere.

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user for input at the console boundary.
type Prompter interface {
	// Prompt asks until validate accepts the answer. A nil validate accepts anything.
	Prompt(label string, validate Validator) (string, error)

	// Edit asks with initial as the editable default.
	Edit(label, initial string, validate Validator) (string, error)

	// Pause blocks until the user presses enter.
	Pause() error
}

// LinePrompter reads whole lines from a reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Prompter = (*LinePrompter)(nil)

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *LinePrompter) Prompt(label string, validate Validator) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(line); verr != nil {
				fmt.Fprintln(p.out, Error(verr.Error()))
				continue
			}
		}
		return line, nil
	}
}

// Edit shows the current value in brackets; an empty answer keeps it.
func (p *LinePrompter) Edit(label, initial string, validate Validator) (string, error) {
	bracketed := fmt.Sprintf("%s[%s] ", label, initial)
	answer, err := p.Prompt(bracketed, func(s string) error {
		if validate == nil {
			return nil
		}
		return validate(keepDefault(s, initial))
	})
	if err != nil {
		return "", err
	}
	return keepDefault(answer, initial), nil
}

func keepDefault(answer, initial string) string {
	if answer == "" {
		return initial
	}
	return answer
}

func (p *LinePrompter) Pause() error {
	fmt.Fprint(p.out, EnterContinue)
	if _, err := p.readLine(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(p.out)
	return nil
}
