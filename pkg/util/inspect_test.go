package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectString(t *testing.T) {
	assert.Equal(t, "\\033[2K\\r- foo\\n", InspectString("\033[2K\r- foo\n"))
}

func TestRedirectLogger(t *testing.T) {
	var buf bytes.Buffer
	RedirectLogger(&buf)
	defer RedirectLogger(&bytes.Buffer{})

	Logger.Info().Msg("hello spinner")

	assert.Contains(t, buf.String(), "hello spinner")
}
