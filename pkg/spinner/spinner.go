// Package spinner animates a status indicator on a terminal stream, erasing
// exactly what it painted before every redraw, even when the painted text
// wraps over several rows.
package spinner

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/elseano/whirl/pkg/frames"
	"github.com/elseano/whirl/pkg/style"
	"github.com/elseano/whirl/pkg/symbols"
	"github.com/elseano/whirl/pkg/term"
	"github.com/elseano/whirl/pkg/util"
)

var ErrNoFrames = errors.New("spinner must define frames")

type Phase int

const (
	Idle Phase = iota
	Spinning
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Spinning:
		return "spinning"
	case Stopped:
		return "stopped"
	}
	return "idle"
}

// Spinner is safe for concurrent use. Its own timer repaints while callers
// mutate it.
type Spinner struct {
	mu sync.Mutex

	// lifecycle serializes Start and the stop calls, which release mu while
	// waiting for the renderer.
	lifecycle sync.Mutex

	stream     term.Stream
	frames     *frameSource
	format     style.Formatter
	symbols    symbols.Set
	enabled    bool
	hideCursor bool
	baseIndent int

	text     string
	color    style.Color
	indent   int
	phase    Phase
	renderer *scheduledRenderer
	last     term.Footprint
	err      error
}

func New(cfg Config) (*Spinner, error) {
	platform := cfg.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	var seq frames.Sequence
	name := "custom"
	if cfg.Frames != nil {
		seq = *cfg.Frames
	} else {
		name = cfg.Name
		seq = frames.Get(cfg.Name, platform)
	}

	if len(seq.Frames) == 0 {
		return nil, pkgerrors.Wrapf(ErrNoFrames, "sequence %q", name)
	}

	stream := cfg.Stream
	if stream == nil {
		stream = term.NewTerminal(os.Stderr)
	}

	colors := stream.IsInteractive()
	if cfg.Colors.Valid {
		colors = cfg.Colors.Bool
	}

	format := cfg.Formatter
	if format == nil {
		format = style.New(colors)
	}

	set := symbols.New(colors, platform)
	if cfg.Symbols != nil {
		set = *cfg.Symbols
	}

	enabled := stream.IsInteractive() && !cfg.CI
	if cfg.Enabled.Valid {
		enabled = cfg.Enabled.Bool
	}

	color := cfg.Color
	if color == "" {
		color = style.Cyan
	}

	indent := clampIndent(cfg.Indent)

	return &Spinner{
		stream:     stream,
		frames:     newFrameSource(seq, cfg.Interval),
		format:     format,
		symbols:    set,
		enabled:    enabled,
		hideCursor: !cfg.KeepCursor,
		baseIndent: indent,
		text:       cfg.Text,
		color:      color,
		indent:     indent,
	}, nil
}

// NewWithText builds a spinner with default settings on os.Stderr.
func NewWithText(text string) *Spinner {
	s, _ := New(Config{Text: text})
	return s
}

// Start begins animating. It does nothing while already spinning. A disabled
// spinner writes its text once as a plain line instead.
func (s *Spinner) Start(opts ...Override) *Spinner {
	o := collect(opts)

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == Spinning {
		return s
	}

	if o.text.Valid {
		s.text = o.text.String
	}
	if o.indent.Valid {
		s.indent = clampIndent(int(o.indent.Int64))
	}

	s.phase = Spinning

	if !s.enabled {
		if s.text != "" {
			s.write(pad(s.indent) + "- " + s.text + "\n")
		}
		return s
	}

	util.Logger.Debug().Msgf("Starting spinner at %s", s.frames.interval)

	s.frames.reset()

	if s.hideCursor {
		s.record(s.stream.HideCursor())
	}

	s.renderLocked()
	s.renderer = startRenderer(s.frames.interval, s.tick)

	return s
}

// Render erases the previous frame and paints the next one.
func (s *Spinner) Render() *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		s.renderLocked()
	}

	return s
}

func (s *Spinner) tick(r *scheduledRenderer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.renderer != r || s.phase != Spinning {
		return
	}

	s.renderLocked()
}

func (s *Spinner) renderLocked() {
	columns := s.stream.Columns()
	indent := fitIndent(s.indent, columns)

	positioned := s.eraseLocked(indent)

	frame := s.frames.next()
	if s.color != style.None {
		frame = s.format(s.color, frame)
	}

	line := frame + " " + s.text

	if positioned {
		s.write(line)
	} else {
		s.write(pad(indent) + line)
	}

	s.last = term.NewFootprint(pad(indent)+line, columns)
}

// eraseLocked removes the last paint and leaves the cursor at column. It
// reports whether the cursor was moved there.
func (s *Spinner) eraseLocked(column int) bool {
	positioned, err := term.Erase(s.stream, s.last, column)
	s.record(err)
	s.last = term.Footprint{}
	return positioned
}

// Stop cancels the animation and erases it, leaving nothing behind. No
// repaint happens after Stop returns.
func (s *Spinner) Stop() *Spinner {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked(fitIndent(s.indent, s.stream.Columns()))
	return s
}

// stopLocked waits for the renderer with mu released, so an in-flight tick
// can finish. Callers hold lifecycle, so no Start can run in that window.
func (s *Spinner) stopLocked(column int) bool {
	wasSpinning := s.phase == Spinning
	if wasSpinning {
		s.phase = Stopped
	}

	if !s.enabled {
		return false
	}

	r := s.renderer
	s.renderer = nil

	if r != nil {
		s.mu.Unlock()
		r.stop()
		s.mu.Lock()
	}

	s.frames.reset()
	positioned := s.eraseLocked(column)

	if wasSpinning && s.hideCursor {
		s.record(s.stream.ShowCursor())
	}

	if wasSpinning {
		util.Logger.Debug().Msg("Stopped spinner")
	}

	return positioned
}

func (s *Spinner) Succeed(opts ...Override) *Spinner {
	return s.StopAndPersist(append([]Override{WithSymbol(s.symbols.Success)}, opts...)...)
}

func (s *Spinner) Fail(opts ...Override) *Spinner {
	return s.StopAndPersist(append([]Override{WithSymbol(s.symbols.Error)}, opts...)...)
}

func (s *Spinner) Warn(opts ...Override) *Spinner {
	return s.StopAndPersist(append([]Override{WithSymbol(s.symbols.Warning)}, opts...)...)
}

func (s *Spinner) Info(opts ...Override) *Spinner {
	return s.StopAndPersist(append([]Override{WithSymbol(s.symbols.Info)}, opts...)...)
}

// StopAndPersist stops like Stop, then writes "<symbol> <text>" as a final
// line that stays on screen. The symbol defaults to a blank. The indent
// returns to the configured base afterwards. Once stopped, further calls do
// nothing until the next Start.
func (s *Spinner) StopAndPersist(opts ...Override) *Spinner {
	o := collect(opts)

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == Stopped {
		return s
	}

	indent := s.indent
	if o.indent.Valid {
		indent = clampIndent(int(o.indent.Int64))
	}
	indent = fitIndent(indent, s.stream.Columns())

	positioned := s.stopLocked(indent)
	s.phase = Stopped

	if o.text.Valid {
		s.text = o.text.String
	}

	symbol := " "
	if o.symbol.Valid && o.symbol.String != "" {
		symbol = o.symbol.String
	}

	message := s.text
	if o.style != "" {
		message = s.format(o.style, message)
	}

	line := symbol + " " + message + "\n"
	if !positioned {
		line = pad(indent) + line
	}

	s.write(line)
	s.indent = s.baseIndent

	return s
}

// SetText changes the text shown from the next render on.
func (s *Spinner) SetText(text string) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	return s
}

// SetColor changes the glyph style from the next render on.
func (s *Spinner) SetColor(c style.Color) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.color = c
	return s
}

// SetIndent changes the column from the next render on.
func (s *Spinner) SetIndent(indent int) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.indent = clampIndent(indent)
	return s
}

func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *Spinner) Color() style.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

func (s *Spinner) Indent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indent
}

func (s *Spinner) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Spinner) IsSpinning() bool {
	return s.Phase() == Spinning
}

func (s *Spinner) Enabled() bool {
	return s.enabled
}

func (s *Spinner) Interval() time.Duration {
	return s.frames.interval
}

// Frame returns the frame the next render will show.
func (s *Spinner) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames.peek()
}

// Err returns the first error the stream reported. Writes from the timer have
// nowhere else to report to.
func (s *Spinner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Spinner) write(str string) {
	util.Logger.Trace().Msgf("Write %s", util.InspectString(str))

	_, err := io.WriteString(s.stream, str)
	s.record(err)
}

func (s *Spinner) record(err error) {
	if err == nil {
		return
	}

	util.Logger.Error().Err(err).Msg("Spinner write failed")

	if s.err == nil {
		s.err = err
	}
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}

// fitIndent keeps the indent on screen. A terminal never moves the cursor
// past its last column, so neither may the padding.
func fitIndent(indent int, columns int) int {
	if columns > 0 && indent >= columns {
		return columns - 1
	}
	return indent
}

func clampIndent(indent int) int {
	if indent < 0 {
		return 0
	}
	return indent
}
