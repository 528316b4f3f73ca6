// Package style applies named colors to text.
package style

import (
	"github.com/logrusorgru/aurora"
)

// Color names a style. None disables styling entirely; the empty Color
// means "not chosen" and is treated as None by a Formatter.
type Color string

const (
	None    Color = "none"
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"
	Gray    Color = "gray"
	Faint   Color = "faint"
)

// Formatter styles text. The result must strip back to the original text.
type Formatter func(c Color, s string) string

// New returns a Formatter backed by aurora. With colors false every style
// degrades to the plain text.
func New(colors bool) Formatter {
	au := aurora.NewAurora(colors)

	return func(c Color, s string) string {
		var v aurora.Value

		switch c {
		case None, "":
			return s
		case Black:
			v = au.Black(s)
		case Red:
			v = au.Red(s)
		case Green:
			v = au.Green(s)
		case Yellow:
			v = au.Yellow(s)
		case Blue:
			v = au.Blue(s)
		case Magenta:
			v = au.Magenta(s)
		case Cyan:
			v = au.Cyan(s)
		case White:
			v = au.White(s)
		case Gray, "grey":
			v = au.BrightBlack(s)
		case Faint, "dim":
			v = au.Faint(s)
		default:
			return s
		}

		return v.String()
	}
}

// Plain ignores every style.
func Plain(c Color, s string) string {
	return s
}
