// Package term provides the writable terminal stream a spinner paints on and
// the eraser that removes what it painted.
package term

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/morikuni/aec"
	xterm "golang.org/x/term"
)

// Stream is a writable sink plus the capabilities needed to repaint in place.
// Capabilities are queried on every call, never cached, since they can change
// between calls (a resize changes Columns).
type Stream interface {
	io.Writer

	// IsInteractive reports whether cursor and line control are available.
	IsInteractive() bool

	// Columns is the current width, or 0 when the stream has no fixed width.
	Columns() int

	ClearLine() error
	CursorTo(column int) error

	// MoveCursor moves the cursor vertically; negative values move up.
	MoveCursor(rows int) error

	HideCursor() error
	ShowCursor() error
}

type fileDescriptor interface {
	Fd() uintptr
}

// Terminal is a Stream over any io.Writer. When the writer is backed by a file
// descriptor, interactivity and width are detected from it.
type Terminal struct {
	out         io.Writer
	interactive func() bool
	columns     func() int
}

type TerminalOption func(*Terminal)

// WithInteractive overrides interactivity detection.
func WithInteractive(interactive bool) TerminalOption {
	return func(t *Terminal) {
		t.interactive = func() bool { return interactive }
	}
}

// WithColumns overrides width detection. The function is called each time the
// width is needed.
func WithColumns(columns func() int) TerminalOption {
	return func(t *Terminal) {
		t.columns = columns
	}
}

func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:         out,
		interactive: func() bool { return false },
		columns:     func() int { return 0 },
	}

	if f, ok := out.(fileDescriptor); ok {
		fd := f.Fd()

		t.interactive = func() bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}

		t.columns = func() int {
			width, _, err := xterm.GetSize(int(fd))
			if err != nil {
				return 0
			}
			return width
		}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Terminal) Write(b []byte) (int, error) {
	return t.out.Write(b)
}

func (t *Terminal) IsInteractive() bool {
	return t.interactive()
}

func (t *Terminal) Columns() int {
	if !t.IsInteractive() {
		return 0
	}

	return t.columns()
}

func (t *Terminal) ClearLine() error {
	return t.sequence(aec.EraseLine(aec.EraseModes.All))
}

// CursorTo moves to a zero based column on the current row.
func (t *Terminal) CursorTo(column int) error {
	if column < 0 {
		column = 0
	}

	return t.sequence(aec.Column(uint(column + 1)))
}

func (t *Terminal) MoveCursor(rows int) error {
	switch {
	case rows < 0:
		return t.sequence(aec.Up(uint(-rows)))
	case rows > 0:
		return t.sequence(aec.Down(uint(rows)))
	}

	return nil
}

func (t *Terminal) HideCursor() error {
	return t.sequence(aec.Hide)
}

func (t *Terminal) ShowCursor() error {
	return t.sequence(aec.Show)
}

func (t *Terminal) sequence(a aec.ANSI) error {
	if !t.IsInteractive() {
		return nil
	}

	_, err := io.WriteString(t.out, a.String())
	return err
}
