// Package text measures how much of a terminal a string occupies once painted.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Extent is the footprint left on screen by a paint: the number of rows it
// spans and the cursor column on the final row. The zero Extent means nothing
// was painted.
type Extent struct {
	Rows       int
	LastColumn int
}

func (e Extent) IsZero() bool {
	return e.Rows == 0
}

// Ambiguous-width characters count as narrow regardless of the locale, so a
// measurement does not change with LANG.
var condition = &runewidth.Condition{EastAsianWidth: false}

// Width is the display width of s, ignoring escape sequences.
func Width(s string) int {
	return condition.StringWidth(StripANSI(s))
}

// Measure computes the extent of s when written from column 0 of a terminal
// that is columns wide. A width of zero or less means the terminal has no
// fixed width, in which case everything is assumed to land on one row.
func Measure(s string, columns int) Extent {
	plain := StripANSI(s)

	if columns <= 0 {
		return Extent{Rows: 1, LastColumn: condition.StringWidth(plain)}
	}

	rows := 0
	column := 0

	for _, line := range strings.Split(plain, "\n") {
		rows++
		column = 0

		g := uniseg.NewGraphemes(line)
		for g.Next() {
			cluster := g.Str()

			if cluster == "\r" {
				column = 0
				continue
			}

			w := clusterWidth(g.Runes())
			if w == 0 {
				continue
			}

			if column > 0 && column+w > columns {
				rows++
				column = 0
			}

			column += w
		}
	}

	return Extent{Rows: rows, LastColumn: column % columns}
}

func clusterWidth(runes []rune) int {
	for _, r := range runes {
		if w := condition.RuneWidth(r); w > 0 {
			return w
		}
	}

	return 0
}
