// Package termtest provides a virtual terminal for asserting what a Stream
// leaves on screen.
package termtest

import (
	"strconv"
	"strings"
	"unicode/utf8"

	a "github.com/Azure/go-ansiterm"

	"github.com/elseano/whirl/pkg/term"
	"github.com/elseano/whirl/pkg/text"
)

// Screen interprets written bytes like a terminal of a fixed width with
// unlimited height. Line feeds also return the carriage, as a tty does in
// cooked mode. A cursor that fills the last column waits there until the next
// printable character wraps it.
type Screen struct {
	parser  *a.AnsiParser
	width   int
	cells   [][]string
	cursor  cursorInfo
	hidden  bool
	pending []byte

	// Controls lists every cursor and erase command received, in order.
	Controls []string
}

type cursorInfo struct {
	line   int
	column int
}

const wideTail = "\x00"

func NewScreen(width int) *Screen {
	s := &Screen{width: width}
	s.parser = a.CreateParser("Ground", s)
	s.allocLine(0)
	return s
}

// Stream returns an interactive term.Terminal that paints on this screen.
func (s *Screen) Stream() *term.Terminal {
	return term.NewTerminal(s, term.WithInteractive(true), term.WithColumns(s.Width))
}

// Write feeds ASCII through the ANSI parser. The parser reads bytes 0x80-0x9F
// as C1 controls, so multi-byte UTF-8 is decoded here and printed directly.
func (s *Screen) Write(b []byte) (int, error) {
	written := 0

	for len(b) > 0 {
		if len(s.pending) > 0 || b[0] >= utf8.RuneSelf {
			s.decode(b[0])
			b = b[1:]
			written++
			continue
		}

		i := 0
		for i < len(b) && b[i] < utf8.RuneSelf {
			i++
		}

		n, err := s.parser.Parse(b[:i])
		written += n
		if err != nil {
			return written, err
		}

		b = b[i:]
	}

	return written, nil
}

func (s *Screen) decode(b byte) {
	s.pending = append(s.pending, b)
	if !utf8.FullRune(s.pending) {
		return
	}

	r, _ := utf8.DecodeRune(s.pending)
	s.pending = s.pending[:0]
	s.put(r)
}

func (s *Screen) Width() int {
	return s.width
}

// Resize changes the width without reflowing existing content.
func (s *Screen) Resize(width int) {
	s.width = width
}

func (s *Screen) Cursor() (line int, column int) {
	return s.cursor.line, s.cursor.column
}

func (s *Screen) CursorHidden() bool {
	return s.hidden
}

// Line returns the printable contents of a row, without trailing blanks.
func (s *Screen) Line(i int) string {
	if i >= len(s.cells) {
		return ""
	}

	var b strings.Builder
	for _, c := range s.cells[i] {
		switch c {
		case "":
			b.WriteByte(' ')
		case wideTail:
		default:
			b.WriteString(c)
		}
	}

	return strings.TrimRight(b.String(), " ")
}

func (s *Screen) Lines() []string {
	lines := make([]string, len(s.cells))
	for i := range s.cells {
		lines[i] = s.Line(i)
	}
	return lines
}

// Text joins all rows, dropping trailing empty rows.
func (s *Screen) Text() string {
	return strings.TrimRight(strings.Join(s.Lines(), "\n"), "\n")
}

// Blank reports whether nothing printable remains anywhere.
func (s *Screen) Blank() bool {
	return s.Text() == ""
}

func (s *Screen) allocLine(line int) {
	for i := len(s.cells); i <= line; i++ {
		s.cells = append(s.cells, make([]string, s.width))
	}

	if len(s.cells[line]) < s.width {
		s.cells[line] = append(s.cells[line], make([]string, s.width-len(s.cells[line]))...)
	}
}

func (s *Screen) put(r rune) {
	w := text.Width(string(r))
	if w == 0 {
		return
	}

	if s.cursor.column > 0 && s.cursor.column+w > s.width {
		s.cursor.line++
		s.cursor.column = 0
	}

	line := s.cursor.line
	s.allocLine(line)

	for len(s.cells[line]) < s.cursor.column+w {
		s.cells[line] = append(s.cells[line], "")
	}

	s.cells[line][s.cursor.column] = string(r)
	if w == 2 {
		s.cells[line][s.cursor.column+1] = wideTail
	}

	s.cursor.column += w
}

// A cursor up or horizontal move cancels a pending wrap.
func (s *Screen) settle() {
	if s.cursor.column >= s.width {
		s.cursor.column = s.width - 1
	}
	if s.cursor.column < 0 {
		s.cursor.column = 0
	}
}

func (s *Screen) control(name string, n int) {
	s.Controls = append(s.Controls, name+strconv.Itoa(n))
}

// Print
func (s *Screen) Print(b byte) error {
	s.put(rune(b))
	return nil
}

// Execute C0 commands
func (s *Screen) Execute(b byte) error {
	switch b {
	case '\n':
		s.cursor.line++
		s.cursor.column = 0
		s.allocLine(s.cursor.line)
	case '\r':
		s.cursor.column = 0
	case '\b':
		s.cursor.column--
		s.settle()
	}

	return nil
}

// Cursor Up
func (s *Screen) CUU(count int) error {
	s.control("CUU", count)
	s.cursor.line -= count
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}
	s.settle()
	return nil
}

// Cursor Down
func (s *Screen) CUD(count int) error {
	s.control("CUD", count)
	s.cursor.line += count
	s.allocLine(s.cursor.line)
	s.settle()
	return nil
}

// Cursor Forward
func (s *Screen) CUF(count int) error {
	s.cursor.column += count
	s.settle()
	return nil
}

// Cursor Backward
func (s *Screen) CUB(count int) error {
	s.cursor.column -= count
	s.settle()
	return nil
}

// Cursor to Next Line
func (s *Screen) CNL(count int) error {
	s.cursor.line += count
	s.cursor.column = 0
	s.allocLine(s.cursor.line)
	return nil
}

// Cursor to Previous Line
func (s *Screen) CPL(count int) error {
	s.cursor.line -= count
	s.cursor.column = 0
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}
	return nil
}

// Cursor Horizontal position Absolute, one based.
func (s *Screen) CHA(pos int) error {
	s.control("CHA", pos)
	s.cursor.column = pos - 1
	s.settle()
	return nil
}

// Vertical line Position Absolute
func (s *Screen) VPA(pos int) error {
	s.cursor.line = pos - 1
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}
	s.allocLine(s.cursor.line)
	return nil
}

// CUrsor Position
func (s *Screen) CUP(x int, y int) error {
	return s.HVP(x, y)
}

// Horizontal and Vertical Position
func (s *Screen) HVP(x int, y int) error {
	s.cursor.line = y - 1
	s.cursor.column = x - 1
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}
	s.allocLine(s.cursor.line)
	s.settle()
	return nil
}

// Text Cursor Enable Mode
func (s *Screen) DECTCEM(enable bool) error {
	s.hidden = !enable
	return nil
}

// Origin Mode
func (s *Screen) DECOM(enable bool) error {
	return nil
}

// 132 Column Mode
func (s *Screen) DECCOLM(enable bool) error {
	return nil
}

// Erase in Display
func (s *Screen) ED(mode int) error {
	return nil
}

// Erase in Line
func (s *Screen) EL(mode int) error {
	s.control("EL", mode)

	line := s.cursor.line
	s.allocLine(line)

	from, to := 0, len(s.cells[line])
	switch mode {
	case 0:
		from = s.cursor.column
	case 1:
		to = s.cursor.column + 1
	}

	for i := from; i < to && i < len(s.cells[line]); i++ {
		s.cells[line][i] = ""
	}

	return nil
}

// Insert Line
func (s *Screen) IL(count int) error { return nil }

// Delete Line
func (s *Screen) DL(count int) error { return nil }

// Insert Character
func (s *Screen) ICH(count int) error { return nil }

// Delete Character
func (s *Screen) DCH(count int) error { return nil }

// Set Graphics Rendition
func (s *Screen) SGR(values []int) error { return nil }

// Pan Down
func (s *Screen) SU(count int) error { return nil }

// Pan Up
func (s *Screen) SD(count int) error { return nil }

// Device Attributes
func (s *Screen) DA(values []string) error { return nil }

// Set Top and Bottom Margins
func (s *Screen) DECSTBM(x, y int) error { return nil }

// Index
func (s *Screen) IND() error { return nil }

// Reverse Index
func (s *Screen) RI() error { return nil }

// Operating System Command
func (s *Screen) OSC(b []byte) error { return nil }

// Flush updates from previous commands
func (s *Screen) Flush() error { return nil }
