package telegram

import "strings"

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "[", "\\[", "`", "\\`")

// EscapeMarkdown escapes the entity characters of ParseModeMarkdown so
// user text is sent literally.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
