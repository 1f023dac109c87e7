// ABOUTME: Tests for the bubbletea menu model and the line menu.
// ABOUTME: Drives key messages directly and checks the chosen entry.

package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testItems = []string{"Create a comment", "View all comments", "Update a comment", "Delete a comment"}

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuModelEnterChoosesCursor(t *testing.T) {
	m := press(NewMenuModel(MenuTitle, testItems),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	idx, ok := m.(MenuModel).Chosen()
	if !ok || idx != 2 {
		t.Errorf("expected entry 2, got %d (ok=%v)", idx, ok)
	}
}

func TestMenuModelCursorStaysInBounds(t *testing.T) {
	m := press(NewMenuModel(MenuTitle, testItems), tea.KeyMsg{Type: tea.KeyUp}, runeKey('k'))
	if m.(MenuModel).cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.(MenuModel).cursor)
	}

	for i := 0; i < 10; i++ {
		m = press(m, runeKey('j'))
	}
	if m.(MenuModel).cursor != len(testItems) {
		t.Errorf("expected cursor on Exit row, got %d", m.(MenuModel).cursor)
	}
}

func TestMenuModelDigitShortcut(t *testing.T) {
	m := press(NewMenuModel(MenuTitle, testItems), runeKey('4'))

	idx, ok := m.(MenuModel).Chosen()
	if !ok || idx != 3 {
		t.Errorf("expected entry 3, got %d (ok=%v)", idx, ok)
	}
}

func TestMenuModelExitRow(t *testing.T) {
	m := press(NewMenuModel(MenuTitle, testItems), runeKey('5'))

	if _, ok := m.(MenuModel).Chosen(); ok {
		t.Error("expected Exit row to quit")
	}
}

func TestMenuModelQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := press(NewMenuModel(MenuTitle, testItems), k)
		if _, ok := m.(MenuModel).Chosen(); ok {
			t.Errorf("expected %q to quit", k.String())
		}
	}
}

func TestMenuModelView(t *testing.T) {
	view := NewMenuModel(MenuTitle, testItems).View()

	for _, want := range append([]string{MenuTitle, "5 - Exit"}, testItems...) {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestMenuModelViewClearsAfterChoice(t *testing.T) {
	m := press(NewMenuModel(MenuTitle, testItems), runeKey('2'))

	if v := m.View(); v != "" {
		t.Errorf("expected chosen menu to erase itself, got %q", v)
	}
}

func TestTeaMenuKeepsMainScreen(t *testing.T) {
	var out bytes.Buffer
	menu := NewTeaMenu(MenuTitle, testItems, strings.NewReader("2"), &out)

	idx, err := menu.Choose()
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected entry 1, got %d", idx)
	}
	// Entering the alternate screen would hide the listing printed before the menu.
	if strings.Contains(out.String(), "\x1b[?1049h") {
		t.Error("expected menu to stay on the main screen")
	}
}

func TestLineMenuChoose(t *testing.T) {
	var out bytes.Buffer
	lp := NewLinePrompter(strings.NewReader("x\n9\n2\n"), &out)
	menu := NewLineMenu(MenuTitle, testItems, lp, &out)

	idx, err := menu.Choose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected entry 1, got %d", idx)
	}
	if !strings.Contains(out.String(), "Invalid selection.") {
		t.Error("expected out-of-range message")
	}
	if !strings.Contains(out.String(), ErrNotNumber.Error()) {
		t.Error("expected non-numeric message")
	}
}

func TestLineMenuExit(t *testing.T) {
	for _, input := range []string{"5\n", ""} {
		var out bytes.Buffer
		lp := NewLinePrompter(strings.NewReader(input), &out)

		_, err := NewLineMenu(MenuTitle, testItems, lp, &out).Choose()
		if !errors.Is(err, ErrQuit) {
			t.Errorf("input %q: expected ErrQuit, got %v", input, err)
		}
	}
}
