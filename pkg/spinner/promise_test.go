package spinner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/elseano/whirl/pkg/frames"
	"github.com/elseano/whirl/pkg/term"
)

func promiseConfig(buf *bytes.Buffer) Config {
	return Config{
		Text:     "work",
		Stream:   term.NewTerminal(buf),
		Enabled:  null.BoolFrom(false),
		Platform: "linux",
	}
}

func TestPromiseSucceeds(t *testing.T) {
	var buf bytes.Buffer

	task, err := Promise(func() error { return nil }, promiseConfig(&buf))
	require.NoError(t, err)

	assert.NoError(t, task.Wait())
	assert.Equal(t, "- work\n✔ work\n", buf.String())
	assert.Equal(t, Stopped, task.Spinner.Phase())
}

func TestPromiseFails(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	task, err := Promise(func() error { return boom }, promiseConfig(&buf))
	require.NoError(t, err)

	assert.Equal(t, boom, task.Wait())
	assert.Equal(t, "- work\n✖ work\n", buf.String())
}

func TestPromiseRejectsEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	cfg := promiseConfig(&buf)
	cfg.Frames = &frames.Sequence{}

	_, err := Promise(func() error { return nil }, cfg)

	assert.True(t, errors.Is(err, ErrNoFrames))
}
