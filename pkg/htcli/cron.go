package htcli

import (
	"fmt"
	"io"
	"time"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/function61/humantime/pkg/scheduler"
	"github.com/spf13/cobra"
)

func cronEntrypoint() *cobra.Command {
	count := 1
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "cron <schedule>",
		Short:   "Show when a cron schedule fires next",
		Example: "  humantime cron '*/15 * * * *' --count=3\n  humantime cron @daily",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printCronRuns(cmd.OutOrStdout(), args[0], count, time.Now(), opts))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", count, "How many upcoming runs to show")
	opts.register(cmd)

	return cmd
}

func printCronRuns(out io.Writer, spec string, count int, now time.Time, opts *renderOptions) error {
	schedule, err := scheduler.Parse(spec)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	runs := scheduler.NextRuns(schedule, now, count)
	if len(runs) == 0 {
		return fmt.Errorf("schedule %q never fires", spec)
	}

	for _, run := range runs {
		text, err := opts.render(humantime.FromTimeAt(run, now))
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s  %s\n", run.Format(time.RFC3339), text)
	}

	return nil
}
