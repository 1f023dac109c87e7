// ABOUTME: Tests for prompt validators.
// ABOUTME: Covers digit-only selections and required fields.

package ui

import (
	"errors"
	"testing"
)

func TestIsNumber(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"0", nil},
		{"42", nil},
		{"007", nil},
		{"", ErrNotNumber},
		{"abc", ErrNotNumber},
		{"1a", ErrNotNumber},
		{"-1", ErrNotNumber},
		{" 1", ErrNotNumber},
		{"1.5", ErrNotNumber},
	}

	for _, tt := range tests {
		if err := IsNumber(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("IsNumber(%q): expected %v, got %v", tt.input, tt.want, err)
		}
	}
}

func TestNotEmpty(t *testing.T) {
	if err := NotEmpty("x"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := NotEmpty(" "); err != nil {
		t.Errorf("expected whitespace to pass, got %v", err)
	}
	if err := NotEmpty(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
