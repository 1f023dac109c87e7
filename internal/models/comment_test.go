// ABOUTME: Tests for Comment model constructor and validation.
// ABOUTME: Validates PK generation, name defaulting, and timestamps.

package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewComment(t *testing.T) {
	before := time.Now()
	c := NewComment("Hello", "World", "Alice")

	if c.PK == "" {
		t.Error("expected PK to be generated")
	}
	if c.Title != "Hello" {
		t.Errorf("expected title %q, got %q", "Hello", c.Title)
	}
	if c.Body != "World" {
		t.Errorf("expected body %q, got %q", "World", c.Body)
	}
	if c.Name != "Alice" {
		t.Errorf("expected name %q, got %q", "Alice", c.Name)
	}
	if c.CreatedAt.Before(before) {
		t.Error("expected CreatedAt to be set at construction")
	}
}

func TestNewCommentDefaultsName(t *testing.T) {
	c := NewComment("Hello", "World", "")

	if c.Name != DefaultName {
		t.Errorf("expected name %q, got %q", DefaultName, c.Name)
	}
}

func TestNewCommentUniquePK(t *testing.T) {
	a := NewComment("a", "b", "")
	b := NewComment("a", "b", "")

	if a.PK == b.PK {
		t.Error("expected distinct PKs")
	}
}

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		want    error
	}{
		{"valid", &Comment{Title: "t", Body: "b"}, nil},
		{"empty title", &Comment{Body: "b"}, ErrEmptyTitle},
		{"empty body", &Comment{Title: "t"}, ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
