package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

const maskRune = "•"

// FormatCode returns text as it may appear in the status line. Secure fields
// only reveal how many characters were entered.
func FormatCode(text string, secure bool) string {
	if text == "" {
		return "(empty)"
	}
	if secure {
		return strings.Repeat(maskRune, utf8.RuneCountInString(text))
	}
	return fmt.Sprintf("%q", text)
}

// FormatProgress formats the fill level, e.g. "3/6".
func FormatProgress(n, max int) string {
	return fmt.Sprintf("%d/%d", n, max)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
