package htserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/function61/gokit/httputils"
	"github.com/function61/gokit/logex"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/function61/humantime/pkg/scheduler"
	"github.com/samber/lo"
)

const maxCronRuns = 20

type PeriodOutput struct {
	Unit  string `json:"unit"`
	Count int64  `json:"count"`
}

type HumanizeOutput struct {
	Text     string         `json:"text"`
	Accuracy string         `json:"accuracy"`
	Tense    string         `json:"tense"`
	Periods  []PeriodOutput `json:"periods"`
}

type CronRunOutput struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type CronOutput struct {
	Schedule string          `json:"schedule"`
	Runs     []CronRunOutput `json:"runs"`
}

type api struct {
	conf    *Config
	metrics *metricsController
	crons   *scheduler.Cache
	now     func() time.Time
	logl    *logex.Leveled
}

func newServerHandler(
	conf *Config,
	metrics *metricsController,
	now func() time.Time,
	logger *log.Logger,
) http.Handler {
	a := &api{
		conf:    conf,
		metrics: metrics,
		crons:   scheduler.NewCache(conf.CronCacheSize),
		now:     now,
		logl:    logex.Levels(logger),
	}

	routes := httputils.NewMethodMux()
	routes.GET.HandleFunc("/api/humanize", a.humanize)
	routes.GET.HandleFunc("/api/cron", a.cron)
	routes.GET.Handle("/metrics", metrics.MetricsHTTPHandler())

	return metrics.WrapHTTPServer(routes)
}

// GET /api/humanize?duration=-95s&precise=true
// GET /api/humanize?time=2020-09-08T12:00:00Z&tense=past
func (a *api) humanize(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ht, err := humanTimeFromQuery(query, a.now())
	if err != nil {
		a.badRequest(w, err)
		return
	}

	accuracy := humantime.AccuracyFromPrecise(a.conf.DefaultPrecise)
	if preciseStr := query.Get("precise"); preciseStr != "" {
		precise, err := strconv.ParseBool(preciseStr)
		if err != nil {
			a.badRequest(w, fmt.Errorf("precise: %w", err))
			return
		}

		accuracy = humantime.AccuracyFromPrecise(precise)
	}

	tense := ht.Tense(accuracy)
	if tenseStr := query.Get("tense"); tenseStr != "" {
		tense, err = humantime.ParseTense(tenseStr)
		if err != nil {
			a.badRequest(w, err)
			return
		}
	}

	a.metrics.ObserveRender(accuracy, tense)

	respondJSON(w, HumanizeOutput{
		Text:     ht.ToText(accuracy, tense),
		Accuracy: accuracy.String(),
		Tense:    tense.String(),
		Periods: lo.Map(ht.Periods(accuracy), func(period humantime.TimePeriod, _ int) PeriodOutput {
			return PeriodOutput{
				Unit:  period.Unit.String(),
				Count: period.Count,
			}
		}),
	})
}

// GET /api/cron?schedule=@daily&count=3
func (a *api) cron(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	spec := query.Get("schedule")
	if spec == "" {
		a.badRequest(w, errors.New("schedule missing"))
		return
	}

	count := 1
	if countStr := query.Get("count"); countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 1 || count > maxCronRuns {
			a.badRequest(w, fmt.Errorf("count must be 1-%d", maxCronRuns))
			return
		}
	}

	schedule, err := a.crons.Parse(spec)
	if err != nil {
		a.badRequest(w, fmt.Errorf("schedule: %w", err))
		return
	}

	now := a.now()

	runs := lo.Map(scheduler.NextRuns(schedule, now, count), func(next time.Time, _ int) CronRunOutput {
		ht := humantime.FromTimeAt(next, now)

		a.metrics.ObserveRender(humantime.Rough, ht.Tense(humantime.Rough))

		return CronRunOutput{
			At:   next,
			Text: ht.String(),
		}
	})

	respondJSON(w, CronOutput{
		Schedule: spec,
		Runs:     runs,
	})
}

func (a *api) badRequest(w http.ResponseWriter, err error) {
	a.logl.Debug.Printf("bad request: %v", err)

	http.Error(w, err.Error(), http.StatusBadRequest)
}

func humanTimeFromQuery(query url.Values, now time.Time) (humantime.HumanTime, error) {
	durationStr := query.Get("duration")
	timeStr := query.Get("time")

	switch {
	case durationStr != "" && timeStr != "":
		return humantime.HumanTime{}, errors.New("specify either duration or time, not both")
	case durationStr != "":
		dur, err := duration.Parse(durationStr)
		if err != nil {
			return humantime.HumanTime{}, err
		}

		return humantime.FromDuration(dur), nil
	case timeStr != "":
		ts, err := duration.ParseInstant(timeStr, now)
		if err != nil {
			return humantime.HumanTime{}, err
		}

		return humantime.FromTimeAt(ts, now), nil
	default:
		return humantime.HumanTime{}, errors.New("duration or time required")
	}
}

func respondJSON(w http.ResponseWriter, output interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(output); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
