package telegram

import (
	"strconv"
	"strings"

	"task-hero/internal/model"
	"task-hero/internal/task"
)

// splitCommand separates "/cmd@bot args" into "/cmd" and "args".
// Plain text yields an empty command.
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	cmd, args, _ := strings.Cut(text, " ")
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

// parseAddArgs parses "title | difficulty | minutes"; the last two are optional.
func parseAddArgs(args string) (task.CreateInput, error) {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var input task.CreateInput
	if len(parts) > 3 || parts[0] == "" {
		return input, errUsageAdd
	}
	input.Title = parts[0]

	if len(parts) > 1 && parts[1] != "" {
		input.Difficulty = model.Difficulty(strings.ToLower(parts[1]))
	}
	if len(parts) > 2 && parts[2] != "" {
		minutes, err := strconv.Atoi(strings.TrimSuffix(parts[2], "m"))
		if err != nil {
			return input, errBadMinutes
		}
		input.EstimatedMinutes = minutes
	}
	return input, nil
}

// matchTaskID resolves an id prefix against the pending tasks.
func matchTaskID(pending []model.Task, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", errUsageDone
	}

	var match string
	for _, t := range pending {
		if strings.ToLower(t.ID) == prefix {
			return t.ID, nil
		}
	}
	for _, t := range pending {
		if !strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			continue
		}
		if match != "" {
			return "", errAmbiguousID
		}
		match = t.ID
	}
	if match == "" {
		return "", task.ErrTaskNotFound
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
