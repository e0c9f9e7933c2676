// CLI commands for expressing durations, timestamps, file times, uptime and cron schedules
// in English
package htcli

import (
	"github.com/function61/humantime/pkg/humantime"
	"github.com/spf13/cobra"
)

func Entrypoints() []*cobra.Command {
	return []*cobra.Command{
		durationEntrypoint(),
		whenEntrypoint(),
		tableEntrypoint(),
		fileEntrypoint(),
		uptimeEntrypoint(),
		cronEntrypoint(),
		watchEntrypoint(),
	}
}

// flags shared by most commands
type renderOptions struct {
	precise bool
	tense   string // empty = resolve from sign
}

func (r *renderOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&r.precise, "precise", "p", r.precise, "Exact multi-unit breakdown instead of one rough unit")
	cmd.Flags().StringVarP(&r.tense, "tense", "", r.tense, "Force tense (past | present | future)")
}

func (r *renderOptions) accuracy() humantime.Accuracy {
	return humantime.AccuracyFromPrecise(r.precise)
}

func (r *renderOptions) render(ht humantime.HumanTime) (string, error) {
	if r.tense == "" {
		return ht.Text(r.accuracy()), nil
	}

	tense, err := humantime.ParseTense(r.tense)
	if err != nil {
		return "", err
	}

	return ht.ToText(r.accuracy(), tense), nil
}
