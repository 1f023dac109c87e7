// ABOUTME: Tests for line prompts.
// ABOUTME: Covers reprompting on invalid input, defaults, and EOF handling.

package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptAccepts(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("hello world\n"), &out)

	got, err := p.Prompt("Title: ", NotEmpty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
	if !strings.Contains(out.String(), "Title: ") {
		t.Error("expected label in output")
	}
}

func TestPromptRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("abc\n\n12\n"), &out)

	got, err := p.Prompt("Select: ", IsNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "12" {
		t.Errorf("expected %q, got %q", "12", got)
	}
	if n := strings.Count(out.String(), "Select: "); n != 3 {
		t.Errorf("expected 3 prompts, got %d", n)
	}
	if !strings.Contains(out.String(), ErrNotNumber.Error()) {
		t.Error("expected non-numeric message")
	}
}

func TestPromptEmptyRequired(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\nBody\n"), &out)

	got, err := p.Prompt("Body: ", NotEmpty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Body" {
		t.Errorf("expected %q, got %q", "Body", got)
	}
	if !strings.Contains(out.String(), ErrEmpty.Error()) {
		t.Error("expected empty-input message")
	}
}

func TestPromptOptionalAcceptsEmpty(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\n"), io.Discard)

	got, err := p.Prompt("Name: ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty answer, got %q", got)
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("tail"), io.Discard)

	got, err := p.Prompt("x: ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tail" {
		t.Errorf("expected %q, got %q", "tail", got)
	}
}

func TestPromptEOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), io.Discard)

	_, err := p.Prompt("x: ", nil)
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestEditKeepsDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)

	got, err := p.Edit("Body: ", "old body", NotEmpty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "old body" {
		t.Errorf("expected default kept, got %q", got)
	}
	if !strings.Contains(out.String(), "[old body]") {
		t.Error("expected default shown in prompt")
	}
}

func TestEditReplaces(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("new body\n"), io.Discard)

	got, err := p.Edit("Body: ", "old body", NotEmpty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "new body" {
		t.Errorf("expected %q, got %q", "new body", got)
	}
}

func TestPause(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)

	if err := p.Pause(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Press enter to continue...") {
		t.Error("expected continuation message")
	}

	// EOF while paused is not an error.
	if err := p.Pause(); err != nil {
		t.Errorf("expected nil at EOF, got %v", err)
	}
}
