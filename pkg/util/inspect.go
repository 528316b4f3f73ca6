package util

import (
	"strings"
)

// InspectString makes control characters visible, for debug logging of terminal output.
func InspectString(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\033", "\\033")
	return s
}
