// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Scenario errors.
	ErrInvalidCard     = errors.New("invalid card")
	ErrDuplicateCard   = errors.New("duplicate card")
	ErrUnknownPosition = errors.New("unknown position")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidStack    = errors.New("invalid stack size")
	ErrInvalidStat     = errors.New("invalid opponent stat")

	// Range table errors.
	ErrMissingDefault   = errors.New("missing default entry")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidHandKey   = errors.New("invalid hand key")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
