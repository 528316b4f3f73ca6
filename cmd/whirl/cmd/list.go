package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/elseano/whirl/pkg/frames"
)

const previewFrames = 4

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the named spinners",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetAutoWrapText(false)

			for _, name := range frames.Names() {
				seq, _ := frames.Lookup(name)
				table.Append([]string{name, seq.Interval.String(), preview(seq)})
			}

			table.Render()
		},
	}
}

func preview(seq frames.Sequence) string {
	shown := seq.Frames
	if len(shown) > previewFrames {
		shown = shown[:previewFrames]
	}

	return strings.Join(shown, " ")
}
