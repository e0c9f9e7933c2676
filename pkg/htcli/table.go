package htcli

import (
	"io"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func tableEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "table <duration>...",
		Short: "Compare rough and precise expressions of durations",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printComparisonTable(cmd.OutOrStdout(), args))
		},
	}
}

func printComparisonTable(out io.Writer, inputs []string) error {
	tbl := newTable(out, "Duration", "Rough", "Precise")

	for _, input := range inputs {
		dur, err := duration.Parse(input)
		if err != nil {
			return err
		}

		ht := humantime.FromDuration(dur)

		tbl.Append([]string{
			input,
			ht.Text(humantime.Rough),
			ht.Text(humantime.Precise),
		})
	}

	tbl.Render()

	return nil
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(out)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(false)
	tbl.SetAutoWrapText(false) // precise phrases get long
	tbl.SetHeader(header)

	return tbl
}
