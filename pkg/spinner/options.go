package spinner

import (
	"time"

	"gopkg.in/guregu/null.v4"

	"github.com/elseano/whirl/pkg/frames"
	"github.com/elseano/whirl/pkg/style"
	"github.com/elseano/whirl/pkg/symbols"
	"github.com/elseano/whirl/pkg/term"
)

// Config is read once by New.
type Config struct {
	Text string

	// Color styles the frame glyph. The zero value means Cyan; style.None
	// disables styling.
	Color style.Color

	// Name selects a sequence from the frames catalog. Frames, when set,
	// takes precedence and must not be empty.
	Name   string
	Frames *frames.Sequence

	// Interval overrides the sequence's own interval.
	Interval time.Duration

	// Stream defaults to a terminal on os.Stderr. It is borrowed, never closed.
	Stream term.Stream

	// Enabled defaults to an interactive stream outside CI. A disabled
	// spinner writes plain lines instead of animating.
	Enabled null.Bool
	CI      bool

	Indent int

	// KeepCursor leaves the cursor visible while spinning.
	KeepCursor bool

	// Colors controls the default Formatter and Symbols. It defaults to the
	// stream being interactive.
	Colors    null.Bool
	Formatter style.Formatter
	Symbols   *symbols.Set

	// Platform is a GOOS value used to pick glyphs. Defaults to runtime.GOOS.
	Platform string
}

// Override adjusts a single Start or stop call.
type Override func(*overrides)

type overrides struct {
	text   null.String
	indent null.Int
	symbol null.String
	style  style.Color
}

// WithText replaces the spinner text. The new text is kept after the call.
func WithText(text string) Override {
	return func(o *overrides) {
		o.text = null.StringFrom(text)
	}
}

// WithIndent moves the spinner to a new column.
func WithIndent(indent int) Override {
	return func(o *overrides) {
		o.indent = null.IntFrom(int64(indent))
	}
}

// WithSymbol sets the glyph written in front of a persisted line.
func WithSymbol(symbol string) Override {
	return func(o *overrides) {
		o.symbol = null.StringFrom(symbol)
	}
}

// WithStyle styles the text of a persisted line.
func WithStyle(c style.Color) Override {
	return func(o *overrides) {
		o.style = c
	}
}

func collect(opts []Override) overrides {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
