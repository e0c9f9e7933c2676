package htcli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/function61/gokit/osutil"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/function61/humantime/pkg/tui"
	"github.com/mattn/go-isatty"
	"github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

type watchTarget struct {
	input string
	at    time.Time
}

func watchEntrypoint() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "watch <timestamp>...",
		Short:   "Live view of timestamps relative to now (q to quit)",
		Example: "  humantime watch +90s 2030-01-01",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(watch(cmd.OutOrStdout(), args, opts))
		},
	}

	opts.register(cmd)

	return cmd
}

func watch(out io.Writer, inputs []string, opts *renderOptions) error {
	started := time.Now()

	targets := []watchTarget{}
	for _, input := range inputs {
		at, err := duration.ParseInstant(input, started)
		if err != nil {
			return err
		}

		targets = append(targets, watchTarget{input, at})
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) { // piped => render once
		return renderWatchTable(out, targets, started, started, opts)
	}

	return watchInTerminal(targets, started, opts)
}

func watchInTerminal(targets []watchTarget, started time.Time, opts *renderOptions) error {
	// while using termbox, ctrl+c doesn't work as a SIGINT anymore:
	//   https://github.com/nsf/termbox-go/issues/50#issuecomment-60668910
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	quit := make(chan interface{})
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}

			if ev.Type == termbox.EventKey && (ev.Ch == 'q' || ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC) {
				close(quit)
				return
			}
		}
	}()

	if err := redrawUntilQuit(targets, started, opts, quit); err != nil {
		termbox.Interrupt() // poller is still running since quit was not requested
		return err
	}

	return nil
}

func redrawUntilQuit(targets []watchTarget, started time.Time, opts *renderOptions, quit <-chan interface{}) error {
	redraw := time.NewTicker(1 * time.Second)
	defer redraw.Stop()

	for {
		rendered := &bytes.Buffer{}
		if err := renderWatchTable(rendered, targets, started, time.Now(), opts); err != nil {
			return err
		}

		if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
			return err
		}

		drawLinesToTerminal(strings.Split(rendered.String(), "\n"))

		if err := termbox.Flush(); err != nil {
			return err
		}

		select {
		case <-quit:
			return nil
		case <-redraw.C:
		}
	}
}

// progress bar shows how far we are from starting to watch to the target
func renderWatchTable(out io.Writer, targets []watchTarget, started time.Time, now time.Time, opts *renderOptions) error {
	tbl := newTable(out, "Target", "When", "Progress")

	for _, target := range targets {
		text, err := opts.render(humantime.FromTimeAt(target.at, now))
		if err != nil {
			return err
		}

		progress := ""
		if target.at.After(started) {
			progress = fmt.Sprintf(
				"%s %3.0f%%",
				tui.Bar(tui.ElapsedRatio(started, target.at, now), 20, tui.BarDefaultTheme()),
				100*tui.ElapsedRatio(started, target.at, now))
		}

		tbl.Append([]string{target.input, text, progress})
	}

	tbl.Render()

	return nil
}

func drawLinesToTerminal(lines []string) {
	for j, line := range lines {
		for i, ch := range []rune(line) {
			termbox.SetCell(i, j, ch, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
}
