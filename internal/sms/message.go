package sms

import (
	"regexp"
	"strings"
)

// MaxMessageLen is the hard cap on outgoing SMS text. Sources longer
// than this are truncated with an ellipsis marker.
const MaxMessageLen = 300

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeMessage trims the text, collapses whitespace runs (tabs,
// newlines included) to single spaces and enforces MaxMessageLen.
// Blank input sanitizes to the empty string, which callers treat as a
// validation failure. SanitizeMessage is idempotent.
func SanitizeMessage(raw string) string {
	msg := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	runes := []rune(msg)
	if len(runes) > MaxMessageLen {
		msg = string(runes[:MaxMessageLen-3]) + "..."
	}
	return msg
}
