package cmd

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kyokomi/emoji"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thecodeteam/goodbye"
	"gopkg.in/guregu/null.v4"

	"github.com/elseano/whirl/pkg/frames"
	"github.com/elseano/whirl/pkg/spinner"
	"github.com/elseano/whirl/pkg/style"
	"github.com/elseano/whirl/pkg/term"
)

const (
	keySpinner  = "spinner"
	keyCharSet  = "charset"
	keyText     = "text"
	keyColor    = "color"
	keyInterval = "interval"
	keyIndent   = "indent"
	keyEnabled  = "enabled"
	keyNoColor  = "no-color"
	keyDebug    = "debug"
)

// addSpinnerFlags registers the flags shared by every command that spins.
// Each can also be set through a WHIRL_ environment variable.
func addSpinnerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(keySpinner, frames.Default, "Named spinner from the catalog (see list)")
	flags.Int(keyCharSet, -1, "Numbered character set, overrides --spinner")
	flags.String(keyText, "", "Text shown next to the spinner, :emoji: codes allowed")
	flags.String(keyColor, string(style.Cyan), "Spinner color")
	flags.Duration(keyInterval, 0, "Frame interval (defaults to the spinner's own)")
	flags.Int(keyIndent, 0, "Columns to indent the spinner by")
	flags.Bool(keyEnabled, false, "Force animation on or off (defaults to on for interactive terminals outside CI)")
	flags.Bool(keyNoColor, false, "Disable colors")
	flags.Bool(keyDebug, false, "Write debugging info to debug.log")
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("WHIRL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	return v, nil
}

// spinnerConfig builds the spinner configuration from flags and environment.
// A blank text falls back to fallbackText.
func spinnerConfig(v *viper.Viper, out io.Writer, fallbackText string) (spinner.Config, error) {
	cfg := spinner.Config{
		Stream:   term.NewTerminal(out),
		Color:    style.Color(v.GetString(keyColor)),
		Interval: v.GetDuration(keyInterval),
		Indent:   v.GetInt(keyIndent),
		CI:       term.DetectCI().IsCI(),
	}

	text := v.GetString(keyText)
	if text == "" {
		text = fallbackText
	}
	cfg.Text = strings.TrimSpace(emoji.Sprint(text))

	if cfg.Indent < 0 {
		return cfg, errors.Wrapf(ErrorArg, "indent %d", cfg.Indent)
	}

	if n := v.GetInt(keyCharSet); n >= 0 {
		seq, ok := frames.CharSet(n)
		if !ok {
			return cfg, errors.Wrapf(ErrorArg, "unknown charset %d", n)
		}
		cfg.Frames = &seq
	} else {
		name := v.GetString(keySpinner)
		if _, ok := frames.Lookup(name); !ok {
			return cfg, errors.Wrapf(ErrorArg, "unknown spinner %q", name)
		}
		cfg.Name = name
	}

	if v.IsSet(keyEnabled) {
		cfg.Enabled = null.BoolFrom(v.GetBool(keyEnabled))
	}

	if v.GetBool(keyNoColor) || termenv.ColorProfile() == termenv.Ascii {
		cfg.Colors = null.BoolFrom(false)
	}

	return cfg, nil
}

// pause waits for d, or until the command is cancelled.
func pause(cmd *cobra.Command, d time.Duration) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// restoreOnExit erases the spinner and shows the cursor again if the process
// is interrupted while it spins.
func restoreOnExit(s *spinner.Spinner) {
	goodbye.Register(func(ctx context.Context, sig os.Signal) {
		if s.IsSpinning() {
			s.Stop()
		}
	})
}
