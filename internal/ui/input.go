// ABOUTME: Single-line terminal prompt built on bubbles textinput.
// ABOUTME: Validation runs on enter and keeps the prompt open until the input passes.

package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type inputModel struct {
	input    textinput.Model
	validate Validator
	err      error
	done     bool
	aborted  bool
}

func newInputModel(label, initial string, validate Validator) inputModel {
	ti := textinput.New()
	ti.Prompt = label
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return inputModel{input: ti, validate: validate}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	view := m.input.View() + "\n"
	if m.err != nil {
		view += errorStyle.Render(m.err.Error()) + "\n"
	}
	return view
}

// pauseModel waits for enter. ctrl+c and esc also continue.
type pauseModel struct {
	done bool
}

func (m pauseModel) Init() tea.Cmd {
	return nil
}

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pauseModel) View() string {
	if m.done {
		return "\n"
	}
	return EnterContinue
}

// TermPrompter runs each prompt, and the pause, as a small bubbletea program
// so that all reads from the terminal go through one input reader at a time.
type TermPrompter struct {
	in  io.Reader
	out io.Writer
}

var _ Prompter = (*TermPrompter)(nil)

func NewTermPrompter(in io.Reader, out io.Writer) *TermPrompter {
	return &TermPrompter{in: in, out: out}
}

func (p *TermPrompter) program(m tea.Model) *tea.Program {
	return tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
}

func (p *TermPrompter) run(m inputModel) (string, error) {
	final, err := p.program(m).Run()
	if err != nil {
		return "", err
	}
	result := final.(inputModel)
	if result.aborted {
		return "", ErrAborted
	}
	return result.input.Value(), nil
}

func (p *TermPrompter) Prompt(label string, validate Validator) (string, error) {
	return p.run(newInputModel(label, "", validate))
}

func (p *TermPrompter) Edit(label, initial string, validate Validator) (string, error) {
	return p.run(newInputModel(label, initial, validate))
}

func (p *TermPrompter) Pause() error {
	_, err := p.program(pauseModel{}).Run()
	return err
}
