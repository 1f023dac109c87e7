// ABOUTME: Comment model representing one entry on the comment board.
// ABOUTME: Provides constructor, name defaulting, and field validation.

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultName is shown for comments created without an author.
const DefaultName = "Anonymous"

var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrEmptyBody  = errors.New("body cannot be empty")
)

type Comment struct {
	PK        string
	Title     string
	Body      string
	Name      string
	CreatedAt time.Time
}

func NewComment(title, body, name string) *Comment {
	if name == "" {
		name = DefaultName
	}
	return &Comment{
		PK:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func (c *Comment) Validate() error {
	if c.Title == "" {
		return ErrEmptyTitle
	}
	if c.Body == "" {
		return ErrEmptyBody
	}
	return nil
}
