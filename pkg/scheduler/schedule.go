// Cron schedules and their upcoming runs
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// supports optional seconds field and descriptors like "@daily"
func Parse(spec string) (cron.Schedule, error) {
	return cronParser.Parse(spec)
}

// NextRuns returns at most count upcoming runs after now. fewer if the schedule stops firing.
func NextRuns(schedule cron.Schedule, now time.Time, count int) []time.Time {
	runs := []time.Time{}

	for next := now; len(runs) < count; {
		next = schedule.Next(next)
		if next.IsZero() {
			break
		}

		runs = append(runs, next)
	}

	return runs
}
