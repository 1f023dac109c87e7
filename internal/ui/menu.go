// ABOUTME: Main menu rendered inline with bubbletea or as a numbered line menu.
// ABOUTME: Both return the chosen entry index or ErrQuit.

package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrQuit is returned when the user leaves the menu.
var ErrQuit = errors.New("quit")

const exitLabel = "Exit"

// Menu shows a list of entries and returns the index of the chosen one.
type Menu interface {
	Choose() (int, error)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// MenuModel is the bubbletea model behind TeaMenu. The last row is always Exit.
type MenuModel struct {
	title  string
	items  []string
	cursor int
	chosen int
	quit   bool
}

func NewMenuModel(title string, items []string) MenuModel {
	return MenuModel{title: title, items: items, chosen: -1}
}

// Chosen reports the selected entry, or false when the user exited.
func (m MenuModel) Chosen() (int, bool) {
	if m.quit || m.chosen < 0 {
		return 0, false
	}
	return m.chosen, true
}

func (m MenuModel) rows() int {
	return len(m.items) + 1
}

func (m MenuModel) pick(row int) (tea.Model, tea.Cmd) {
	if row == len(m.items) {
		m.quit = true
	} else {
		m.chosen = row
	}
	return m, tea.Quit
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case "enter":
		return m.pick(m.cursor)
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= m.rows() {
			m.cursor = n - 1
			return m.pick(n - 1)
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quit || m.chosen >= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n" + titleStyle.Render(m.title) + "\n\n")
	for i := 0; i < m.rows(); i++ {
		label := exitLabel
		if i < len(m.items) {
			label = m.items[i]
		}
		row := fmt.Sprintf("%d - %s", i+1, label)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		sb.WriteString("    " + row + "\n")
	}
	sb.WriteString("\n" + helpStyle.Render("↑/↓ move • enter select • q quit") + "\n")

	return sb.String()
}

// TeaMenu draws the menu inline, below whatever the session printed last, and
// erases it once an entry is picked.
type TeaMenu struct {
	title string
	items []string
	in    io.Reader
	out   io.Writer
}

var _ Menu = (*TeaMenu)(nil)

func NewTeaMenu(title string, items []string, in io.Reader, out io.Writer) *TeaMenu {
	return &TeaMenu{title: title, items: items, in: in, out: out}
}

func (t *TeaMenu) Choose() (int, error) {
	p := tea.NewProgram(NewMenuModel(t.title, t.items),
		tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	idx, ok := final.(MenuModel).Chosen()
	if !ok {
		return 0, ErrQuit
	}
	return idx, nil
}

// LineMenu prints numbered entries and reads a choice through a LinePrompter.
type LineMenu struct {
	title  string
	items  []string
	prompt *LinePrompter
	out    io.Writer
}

var _ Menu = (*LineMenu)(nil)

func NewLineMenu(title string, items []string, prompt *LinePrompter, out io.Writer) *LineMenu {
	return &LineMenu{title: title, items: items, prompt: prompt, out: out}
}

// Choose asks until the answer names an entry. EOF counts as Exit.
func (l *LineMenu) Choose() (int, error) {
	fmt.Fprintf(l.out, "\n%s\n\n", l.title)
	for i, item := range l.items {
		fmt.Fprintf(l.out, "  %d - %s\n", i+1, item)
	}
	fmt.Fprintf(l.out, "  %d - %s\n\n", len(l.items)+1, exitLabel)

	for {
		answer, err := l.prompt.Prompt("Select an option: ", IsNumber)
		if errors.Is(err, io.EOF) {
			return 0, ErrQuit
		}
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		switch {
		case err == nil && n >= 1 && n <= len(l.items):
			return n - 1, nil
		case err == nil && n == len(l.items)+1:
			return 0, ErrQuit
		}
		fmt.Fprintln(l.out, Error("Invalid selection."))
	}
}
