package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elseano/whirl/pkg/util"
)

var rootCmd = NewRootCmd()

func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute(version string, gitCommit string) error {
	rootCmd.Version = version + " (" + gitCommit + ")"

	return rootCmd.Execute()
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "whirl",
		Short:         "Terminal spinners",
		Long:          `Whirl shows a spinner while you wait, and cleans up after itself`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}

	addSpinnerFlags(rootCmd)

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	if !v.GetBool(keyDebug) {
		util.RedirectLogger(io.Discard)
		return nil
	}

	f, err := os.Create("debug.log")
	if err != nil {
		return err
	}

	util.RedirectLogger(f)
	util.Logger.Debug().Msgf("Running %s", cmd.CommandPath())

	return nil
}
