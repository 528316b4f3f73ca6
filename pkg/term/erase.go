package term

import (
	"github.com/elseano/whirl/pkg/text"
	"github.com/elseano/whirl/pkg/util"
)

// Footprint records a paint: exactly what was written, how wide the stream was
// at the time, and the extent that produced.
type Footprint struct {
	Text    string
	Columns int
	Extent  text.Extent
}

// NewFootprint measures s as painted on a stream that is columns wide.
func NewFootprint(s string, columns int) Footprint {
	return Footprint{Text: s, Columns: columns, Extent: text.Measure(s, columns)}
}

func (f Footprint) IsZero() bool {
	return f.Extent.IsZero()
}

// Erase removes the footprint and leaves the cursor at column on the row the
// paint started on. It reports whether any cursor positioning was emitted,
// which is false for a non-interactive stream or an empty footprint.
//
// The width is resampled from the stream. If it changed since the paint, the
// painted text is re-measured at the new width. Terminals that reflow on resize
// do not always match that estimate, so a resize between paint and erase may
// clear one row too many or too few.
func Erase(s Stream, f Footprint, column int) (bool, error) {
	if !s.IsInteractive() || f.IsZero() {
		return false, nil
	}

	extent := f.Extent
	if columns := s.Columns(); columns != f.Columns {
		extent = text.Measure(f.Text, columns)
		util.Logger.Debug().Msgf("Width changed from %d to %d, erasing %d rows instead of %d", f.Columns, columns, extent.Rows, f.Extent.Rows)
	}

	if err := s.ClearLine(); err != nil {
		return false, err
	}

	for i := 1; i < extent.Rows; i++ {
		if err := s.MoveCursor(-1); err != nil {
			return false, err
		}

		if err := s.ClearLine(); err != nil {
			return false, err
		}
	}

	if err := s.CursorTo(column); err != nil {
		return false, err
	}

	return true, nil
}
