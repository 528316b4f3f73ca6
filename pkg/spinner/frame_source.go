package spinner

import (
	"time"

	"github.com/elseano/whirl/pkg/frames"
)

const fallbackInterval = 100 * time.Millisecond

// frameSource cycles through a sequence, one frame per render.
type frameSource struct {
	frames   []string
	index    int
	interval time.Duration
}

// newFrameSource picks the interval: explicit, then the sequence default,
// then fallbackInterval.
func newFrameSource(seq frames.Sequence, interval time.Duration) *frameSource {
	if interval <= 0 {
		interval = seq.Interval
	}
	if interval <= 0 {
		interval = fallbackInterval
	}

	return &frameSource{frames: seq.Frames, interval: interval}
}

func (f *frameSource) next() string {
	frame := f.frames[f.index]
	f.index = (f.index + 1) % len(f.frames)
	return frame
}

func (f *frameSource) peek() string {
	return f.frames[f.index]
}

func (f *frameSource) reset() {
	f.index = 0
}
