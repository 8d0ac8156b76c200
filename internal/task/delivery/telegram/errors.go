package telegram

import (
	"errors"

	"task-hero/internal/task"
)

var (
	errUsageAdd    = errors.New("usage: /add <title> | easy|medium|hard | minutes")
	errUsageDone   = errors.New("usage: /done <task id prefix>")
	errBadMinutes  = errors.New("minutes must be a whole number")
	errAmbiguousID = errors.New("several tasks match that id, use more characters")
)

const genericErrorReply = "Something went wrong, please try again."

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case task.IsValidation(err):
		return "⚠️ " + err.Error()
	case task.IsNotFound(err):
		return "⚠️ No pending task matches that id."
	case errors.Is(err, errUsageAdd), errors.Is(err, errUsageDone),
		errors.Is(err, errBadMinutes), errors.Is(err, errAmbiguousID):
		return "⚠️ " + err.Error()
	default:
		return genericErrorReply
	}
}
