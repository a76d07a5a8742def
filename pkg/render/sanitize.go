package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var controlPattern = regexp.MustCompile(`[\x00-\x08\x0b-\x1f\x7f]`)

// Sanitize strips terminal escape sequences and control characters other
// than newline and tab from user text.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return controlPattern.ReplaceAllString(ansi.Strip(s), "")
}

// StripANSI removes escape sequences, for measuring and tests.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
