package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/elseano/whirl/pkg/spinner"
	"github.com/elseano/whirl/pkg/style"
)

func newDemoCmd() *cobra.Command {
	var step time.Duration

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Show a spinner that changes once, then succeeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), demo(cmd, step))
		},
	}

	demoCmd.Flags().DurationVar(&step, "step", time.Second, "Time between each stage of the demo")

	return demoCmd
}

func demo(cmd *cobra.Command, step time.Duration) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := spinnerConfig(v, cmd.ErrOrStderr(), "Loading unicorns")
	if err != nil {
		return err
	}

	s, err := spinner.New(cfg)
	if err != nil {
		return err
	}

	restoreOnExit(s)

	s.Start()

	pause(cmd, step)
	s.SetColor(style.Yellow).SetText("Loading rainbows")

	pause(cmd, step)
	s.Succeed()

	return s.Err()
}
