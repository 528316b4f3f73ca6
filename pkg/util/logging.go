package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// RedirectLogger sends all further log output to out. Pass io.Discard to silence it.
func RedirectLogger(out io.Writer) {
	Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: true})
}
