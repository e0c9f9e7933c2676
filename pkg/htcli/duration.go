package htcli

import (
	"fmt"
	"io"
	"time"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/spf13/cobra"
)

func durationEntrypoint() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "duration <duration>...",
		Short:   "Express durations in English",
		Example: "  humantime duration 95s 1w3d\n  humantime duration --precise -- -45d",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printDurations(cmd.OutOrStdout(), args, opts))
		},
	}

	opts.register(cmd)

	return cmd
}

func printDurations(out io.Writer, inputs []string, opts *renderOptions) error {
	for _, input := range inputs {
		dur, err := duration.Parse(input)
		if err != nil {
			return err
		}

		text, err := opts.render(humantime.FromDuration(dur))
		if err != nil {
			return err
		}

		fmt.Fprintln(out, text)
	}

	return nil
}

func whenEntrypoint() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "when <timestamp>...",
		Short:   "Express timestamps relative to now",
		Example: "  humantime when 2020-09-08T12:00:00Z\n  humantime when -- -3d",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printInstants(cmd.OutOrStdout(), args, time.Now(), opts))
		},
	}

	opts.register(cmd)

	return cmd
}

func printInstants(out io.Writer, inputs []string, now time.Time, opts *renderOptions) error {
	for _, input := range inputs {
		ts, err := duration.ParseInstant(input, now)
		if err != nil {
			return err
		}

		text, err := opts.render(humantime.FromTimeAt(ts, now))
		if err != nil {
			return err
		}

		fmt.Fprintln(out, text)
	}

	return nil
}
