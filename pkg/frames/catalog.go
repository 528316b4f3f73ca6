// Package frames is the catalog of named animation sequences.
package frames

import (
	"time"

	spin "github.com/briandowns/spinner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sequence is a cyclic list of frames and the interval each is shown for. A
// zero Interval leaves the choice to the spinner.
type Sequence struct {
	Frames   []string
	Interval time.Duration
}

const (
	Default = "dots"

	// ASCII is substituted on platforms that cannot render the other glyphs.
	ASCII = "line"

	charSetInterval = 100 * time.Millisecond
)

var catalog = map[string]Sequence{
	"dots":                {Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, Interval: 80 * time.Millisecond},
	"dots2":               {Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}, Interval: 80 * time.Millisecond},
	"line":                {Frames: []string{"-", "\\", "|", "/"}, Interval: 130 * time.Millisecond},
	"line2":               {Frames: []string{"⠂", "-", "–", "—", "–", "-"}, Interval: 100 * time.Millisecond},
	"pipe":                {Frames: []string{"┤", "┘", "┴", "└", "├", "┌", "┬", "┐"}, Interval: 100 * time.Millisecond},
	"simpleDots":          {Frames: []string{".  ", ".. ", "...", "   "}, Interval: 400 * time.Millisecond},
	"simpleDotsScrolling": {Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "}, Interval: 200 * time.Millisecond},
	"star":                {Frames: []string{"✶", "✸", "✹", "✺", "✹", "✷"}, Interval: 70 * time.Millisecond},
	"flip":                {Frames: []string{"_", "_", "_", "-", "`", "`", "'", "´", "-", "_", "_", "_"}, Interval: 70 * time.Millisecond},
	"hamburger":           {Frames: []string{"☱", "☲", "☴"}, Interval: 100 * time.Millisecond},
	"growVertical":        {Frames: []string{"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃"}, Interval: 120 * time.Millisecond},
	"balloon":             {Frames: []string{" ", ".", "o", "O", "@", "*", " "}, Interval: 140 * time.Millisecond},
	"noise":               {Frames: []string{"▓", "▒", "░"}, Interval: 100 * time.Millisecond},
	"bounce":              {Frames: []string{"⠁", "⠂", "⠄", "⠂"}, Interval: 120 * time.Millisecond},
	"arc":                 {Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"}, Interval: 100 * time.Millisecond},
	"circle":              {Frames: []string{"◡", "⊙", "◠"}, Interval: 120 * time.Millisecond},
	"circleHalves":        {Frames: []string{"◐", "◓", "◑", "◒"}, Interval: 50 * time.Millisecond},
	"squareCorners":       {Frames: []string{"◰", "◳", "◲", "◱"}, Interval: 180 * time.Millisecond},
	"toggle":              {Frames: []string{"⊶", "⊷"}, Interval: 250 * time.Millisecond},
	"arrow":               {Frames: []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"}, Interval: 100 * time.Millisecond},
	"bouncingBar":         {Frames: []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]", "[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]"}, Interval: 80 * time.Millisecond},
	"earth":               {Frames: []string{"🌍", "🌎", "🌏"}, Interval: 180 * time.Millisecond},
	"moon":                {Frames: []string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}, Interval: 80 * time.Millisecond},
}

// Lookup finds a sequence by name.
func Lookup(name string) (Sequence, bool) {
	seq, ok := catalog[name]
	if !ok {
		return Sequence{}, false
	}

	return seq.clone(), true
}

// Get resolves a name for the given platform (a GOOS value). Unknown names
// resolve to Default, and windows always gets the ASCII sequence.
func Get(name string, platform string) Sequence {
	if platform == "windows" {
		name = ASCII
	}

	if seq, ok := Lookup(name); ok {
		return seq
	}

	seq, _ := Lookup(Default)
	return seq
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := maps.Keys(catalog)
	slices.Sort(names)
	return names
}

// CharSet exposes the numbered character sets of github.com/briandowns/spinner.
func CharSet(n int) (Sequence, bool) {
	set, ok := spin.CharSets[n]
	if !ok || len(set) == 0 {
		return Sequence{}, false
	}

	return Sequence{Frames: slices.Clone(set), Interval: charSetInterval}, true
}

func (s Sequence) clone() Sequence {
	return Sequence{Frames: slices.Clone(s.Frames), Interval: s.Interval}
}
