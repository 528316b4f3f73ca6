// Package symbols holds the glyphs written when a spinner persists an outcome.
package symbols

import (
	"github.com/fatih/color"
)

const (
	TICK  = "✔"
	CROSS = "✖"
	WARN  = "⚠"
	INFO  = "ℹ"
)

// Fallbacks for consoles without the glyphs above.
const (
	asciiTick  = "√"
	asciiCross = "×"
	asciiWarn  = "‼"
	asciiInfo  = "i"
)

type Set struct {
	Success string
	Error   string
	Warning string
	Info    string
}

func New(colors bool, platform string) Set {
	tick, cross, warn, info := TICK, CROSS, WARN, INFO
	if platform == "windows" {
		tick, cross, warn, info = asciiTick, asciiCross, asciiWarn, asciiInfo
	}

	return Set{
		Success: paint(colors, color.FgGreen, tick),
		Error:   paint(colors, color.FgRed, cross),
		Warning: paint(colors, color.FgYellow, warn),
		Info:    paint(colors, color.FgBlue, info),
	}
}

func paint(colors bool, attr color.Attribute, glyph string) string {
	c := color.New(attr)
	if colors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(glyph)
}
