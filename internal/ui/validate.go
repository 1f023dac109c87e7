// ABOUTME: Prompt-time validators for menu selections and required fields.
// ABOUTME: Invalid input is rejected before anything reaches the store.

package ui

import "errors"

var (
	ErrNotNumber = errors.New("this input contains non-numeric characters")
	ErrEmpty     = errors.New("this input is empty")
)

// Validator checks a submitted line. A non-nil error rejects it.
type Validator func(string) error

// IsNumber accepts only non-empty strings of ASCII digits.
func IsNumber(s string) error {
	if s == "" {
		return ErrNotNumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrNotNumber
		}
	}
	return nil
}

// NotEmpty rejects a zero-length string.
func NotEmpty(s string) error {
	if s == "" {
		return ErrEmpty
	}
	return nil
}
