package termtest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenPrintsAndWraps(t *testing.T) {
	s := NewScreen(5)
	fmt.Fprint(s, "abcdefgh")

	assert.Equal(t, []string{"abcde", "fgh"}, s.Lines())
	line, column := s.Cursor()
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, column)
}

func TestScreenDefersWrapAtLastColumn(t *testing.T) {
	s := NewScreen(5)
	fmt.Fprint(s, "abcde")

	line, column := s.Cursor()
	assert.Equal(t, 0, line)
	assert.Equal(t, 5, column)

	fmt.Fprint(s, "f")
	assert.Equal(t, "abcde\nf", s.Text())
}

func TestScreenLineFeedReturnsCarriage(t *testing.T) {
	s := NewScreen(20)
	fmt.Fprint(s, "one\ntwo\rT")

	assert.Equal(t, "one\nTwo", s.Text())
}

func TestScreenEraseAndMove(t *testing.T) {
	s := NewScreen(20)
	fmt.Fprint(s, "one\ntwo\nthree")
	fmt.Fprint(s, "\033[2K\033[1A\033[2K\033[3G")

	assert.Equal(t, "one", s.Text())
	line, column := s.Cursor()
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, column)
	assert.Equal(t, []string{"EL2", "CUU1", "EL2", "CHA3"}, s.Controls)
}

func TestScreenCursorVisibility(t *testing.T) {
	s := NewScreen(20)

	fmt.Fprint(s, "\033[?25l")
	assert.True(t, s.CursorHidden())

	fmt.Fprint(s, "\033[?25h")
	assert.False(t, s.CursorHidden())
}

func TestScreenIgnoresStyling(t *testing.T) {
	s := NewScreen(20)
	fmt.Fprint(s, "\033[36mcyan\033[0m text")

	assert.Equal(t, "cyan text", s.Text())
}

func TestScreenStreamIsInteractive(t *testing.T) {
	s := NewScreen(33)
	stream := s.Stream()

	assert.True(t, stream.IsInteractive())
	assert.Equal(t, 33, stream.Columns())

	s.Resize(10)
	assert.Equal(t, 10, stream.Columns())
}

func TestScreenPrintsWideCharacters(t *testing.T) {
	cases := []struct {
		written string
		lines   []string
		column  int
	}{
		{"古古古", []string{"古古古"}, 6},
		{"🦄🦄", []string{"🦄🦄"}, 4},
		{"ab⠋cd", []string{"ab⠋cd"}, 5},
		{"✔ ok", []string{"✔ ok"}, 4},
		{"🦄🦄🦄🦄🦄🦄", []string{"🦄🦄🦄🦄🦄", "🦄"}, 2},
	}

	for _, c := range cases {
		s := NewScreen(10)
		fmt.Fprint(s, c.written)

		assert.Equal(t, c.lines, s.Lines(), c.written)
		_, column := s.Cursor()
		assert.Equal(t, c.column, column, c.written)
	}
}

func TestScreenWideCharacterDoesNotSplit(t *testing.T) {
	s := NewScreen(5)
	fmt.Fprint(s, "古古古")

	assert.Equal(t, []string{"古古", "古"}, s.Lines())
}

func TestScreenDecodesRunesSplitAcrossWrites(t *testing.T) {
	s := NewScreen(10)
	b := []byte("a古b")

	for i := range b {
		n, err := s.Write(b[i : i+1])
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	assert.Equal(t, "a古b", s.Text())
}

func TestScreenWideCharactersWithControls(t *testing.T) {
	s := NewScreen(10)
	fmt.Fprint(s, "\033[36m⠋\033[0m 古\033[2K\033[1Gok")

	assert.Equal(t, "ok", s.Text())
	assert.Equal(t, []string{"EL2", "CHA1"}, s.Controls)
}
