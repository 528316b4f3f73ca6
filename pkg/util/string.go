package util

import (
	"regexp"
	"strings"
)

var returnsMatch = regexp.MustCompile("(^|\n)?.*?\r(.*?)(\n|$)")

// CollapseReturns drops text that a carriage return would have overwritten,
// leaving only what ends up visible on each line.
func CollapseReturns(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	for {
		if !returnsMatch.MatchString(input) {
			break
		}

		input = returnsMatch.ReplaceAllString(input, "$1$2$3")
	}

	return input
}
