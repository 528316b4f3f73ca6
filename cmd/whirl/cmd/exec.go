package cmd

import (
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elseano/whirl/pkg/exec"
	"github.com/elseano/whirl/pkg/spinner"
	"github.com/elseano/whirl/pkg/util"
)

func newExecCmd() *cobra.Command {
	var usePty bool

	execCmd := &cobra.Command{
		Use:   "exec -- command [args]...",
		Short: "Spin while a command runs",
		Long:  `Runs a command behind a spinner. The spinner succeeds or fails with the command, and the output of a failed command is printed afterwards`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), execute(cmd, args, usePty))
		},
	}

	execCmd.Flags().BoolVar(&usePty, "pty", false, "Run the command in a pseudo terminal")

	return execCmd
}

func execute(cmd *cobra.Command, args []string, usePty bool) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	cfg, err := spinnerConfig(v, cmd.ErrOrStderr(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	var result *exec.Result

	task, err := spinner.Promise(func() error {
		process := exec.NewProcess(osexec.Command(args[0], args[1:]...), exec.WithPty(usePty))

		var err error
		if result, err = process.Run(); err != nil {
			return err
		}

		if !result.Success() {
			return &ExitError{Code: result.ExitCode}
		}

		return nil
	}, cfg)
	if err != nil {
		return err
	}

	restoreOnExit(task.Spinner)

	err = task.Wait()

	if result != nil && !result.Success() {
		fmt.Fprint(cmd.OutOrStdout(), result.Text())
	}

	util.Logger.Debug().Msgf("%s finished: %v", args[0], err)

	if err == nil {
		err = task.Spinner.Err()
	}

	return err
}
