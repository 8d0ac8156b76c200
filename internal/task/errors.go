package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrInvalidTheme      = errors.New("theme must be light, dark or system")
	ErrTaskNotFound      = errors.New("task not found")
)

// IsValidation reports whether err was caused by bad user input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidDifficulty) ||
		errors.Is(err, ErrInvalidTheme)
}

// IsNotFound reports whether err refers to a task that does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}
