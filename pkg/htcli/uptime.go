package htcli

import (
	"fmt"
	"io"
	"time"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/prometheus/procfs"
	"github.com/spf13/cobra"
)

func uptimeEntrypoint() *cobra.Command {
	precise := false

	cmd := &cobra.Command{
		Use:   "uptime",
		Short: "Show how long this (Linux) host has been up",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printUptime(cmd.OutOrStdout(), time.Now(), humantime.AccuracyFromPrecise(precise)))
		},
	}

	cmd.Flags().BoolVarP(&precise, "precise", "p", precise, "Exact multi-unit breakdown instead of one rough unit")

	return cmd
}

func printUptime(out io.Writer, now time.Time, accuracy humantime.Accuracy) error {
	bootTime, err := readBootTime()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, uptimeText(bootTime, now, accuracy))
	return err
}

func uptimeText(bootTime time.Time, now time.Time, accuracy humantime.Accuracy) string {
	// present tense b/c "up 3 days" instead of "up in 3 days"
	return fmt.Sprintf(
		"up %s (booted %s)",
		humantime.FromTimeAt(now, bootTime).ToText(accuracy, humantime.Present),
		bootTime.Format(time.RFC3339))
}

// from /proc/stat "btime"
func readBootTime() (time.Time, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return time.Time{}, err
	}

	stat, err := fs.Stat()
	if err != nil {
		return time.Time{}, fmt.Errorf("readBootTime: %w", err)
	}

	return time.Unix(int64(stat.BootTime), 0), nil
}
