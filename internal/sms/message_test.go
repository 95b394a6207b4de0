package sms

import (
	"strings"
	"testing"
)

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"trims", "  hello  ", "hello"},
		{"collapses runs", "a  b\tc\nd\r\ne", "a b c d e"},
		{"blank", "   \n\t ", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeMessage(tc.input); got != tc.want {
				t.Fatalf("SanitizeMessage(%q)=%q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeMessageTruncates(t *testing.T) {
	input := strings.Repeat("a", 400)
	got := SanitizeMessage(input)
	if len(got) != MaxMessageLen {
		t.Fatalf("sanitized length = %d, expected %d", len(got), MaxMessageLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated message missing ellipsis marker: %q", got[len(got)-10:])
	}
	if got[:MaxMessageLen-3] != input[:MaxMessageLen-3] {
		t.Fatal("truncation altered leading content")
	}
}

func TestSanitizeMessageIdempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"  a\t\tb \n c  ",
		strings.Repeat("x", 400),
		strings.Repeat("word ", 100),
		"",
	}

	for _, input := range inputs {
		once := SanitizeMessage(input)
		if twice := SanitizeMessage(once); twice != once {
			t.Fatalf("SanitizeMessage not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
