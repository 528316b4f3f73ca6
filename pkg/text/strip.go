package text

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

type stripState int

const (
	ground stripState = iota
	escape
	csi
	osc
	oscEscape
)

// StripANSI removes escape sequences so that only printable text remains.
// CSI sequences (styling, cursor movement, erase) run to their final byte, OSC
// sequences such as hyperlinks run to BEL or ST, and any other escape covers
// its intermediate bytes plus one final byte.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, ansi.Marker) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	state := ground
	for _, c := range s {
		switch state {
		case ground:
			if c == ansi.Marker {
				state = escape
				continue
			}
			b.WriteRune(c)

		case escape:
			switch {
			case c == '[':
				state = csi
			case c == ']':
				state = osc
			case c == ansi.Marker, c >= 0x20 && c <= 0x2f:
				// Still inside the escape.
			default:
				state = ground
			}

		case csi:
			if c >= 0x40 && c <= 0x7e {
				state = ground
			}

		case osc:
			switch c {
			case '\a':
				state = ground
			case ansi.Marker:
				state = oscEscape
			}

		case oscEscape:
			if c == '\\' {
				state = ground
			} else {
				state = osc
			}
		}
	}

	return b.String()
}
