// ABOUTME: Console bundles the menu, prompts, and output stream for one session.
// ABOUTME: Picks the bubbletea or line rendering depending on the terminal.

package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// MenuTitle heads the main menu.
const MenuTitle = "Main Menu"

type Console struct {
	Out      io.Writer
	Prompter Prompter
	Menu     Menu

	screen *termenv.Output
}

// Clear wipes the screen. Line consoles never clear.
func (c *Console) Clear() {
	if c.screen != nil {
		c.screen.ClearScreen()
	}
}

// NewLineConsole reads answers line by line. Used for pipes and tests.
func NewLineConsole(in io.Reader, out io.Writer, items []string) *Console {
	lp := NewLinePrompter(in, out)
	return &Console{
		Out:      out,
		Prompter: lp,
		Menu:     NewLineMenu(MenuTitle, items, lp, out),
	}
}

// NewTerminalConsole uses bubbletea for the menu and prompts.
func NewTerminalConsole(in, out *os.File, items []string) *Console {
	return &Console{
		Out:      out,
		Prompter: NewTermPrompter(in, out),
		Menu:     NewTeaMenu(MenuTitle, items, in, out),
		screen:   termenv.NewOutput(out),
	}
}

// IsTerminal reports whether both files are attached to a terminal.
func IsTerminal(in, out *os.File) bool {
	return isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd())
}
