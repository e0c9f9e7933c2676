package htcli

import (
	"io"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/dustin/go-humanize"
	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func fileEntrypoint() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "file <path>...",
		Short: "Show when files were modified, accessed, changed and born",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printFileTimes(cmd.OutOrStdout(), args, time.Now(), opts))
		},
	}

	opts.register(cmd)

	return cmd
}

func printFileTimes(out io.Writer, paths []string, now time.Time, opts *renderOptions) error {
	tbl := newTable(out, "File", "Size", "Modified", "Accessed", "Changed", "Born")
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, path := range paths {
		row, err := fileTimesRow(path, now, opts)
		if err != nil {
			return err
		}

		tbl.Append(row)
	}

	tbl.Render()

	return nil
}

func fileTimesRow(path string, now time.Time, opts *renderOptions) ([]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// https://unix.stackexchange.com/questions/2802/what-is-the-difference-between-modify-and-change-in-stat-command-context
	allTimes := times.Get(fileInfo)

	render := func(ts time.Time, available bool) (string, error) {
		if !available {
			return "-", nil
		}

		return opts.render(humantime.FromTimeAt(ts, now))
	}

	columns := []struct {
		ts        func() time.Time
		available bool
	}{
		{allTimes.ModTime, true},
		{allTimes.AccessTime, true},
		{allTimes.ChangeTime, allTimes.HasChangeTime()}, // ChangeTime() panics if not available
		{allTimes.BirthTime, allTimes.HasBirthTime()},
	}

	row := []string{path, humanize.Bytes(uint64(fileInfo.Size()))}

	for _, column := range columns {
		ts := time.Time{}
		if column.available {
			ts = column.ts()
		}

		text, err := render(ts, column.available)
		if err != nil {
			return nil, err
		}

		row = append(row, text)
	}

	return row, nil
}
