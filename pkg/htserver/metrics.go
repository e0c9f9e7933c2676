package htserver

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/function61/humantime/pkg/humantime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metricsController struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	renders      *prometheus.CounterVec
}

func newMetricsController() *metricsController {
	reg := prometheus.NewRegistry()

	m := &metricsController{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "humantime_http_requests_total",
			Help: "HTTP server's handled requests",
		}, []string{"code", "method"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "humantime_renders_total",
			Help: "Times expressed in English",
		}, []string{"accuracy", "tense"}),
	}

	reg.MustRegister(m.httpRequests)
	reg.MustRegister(m.renders)

	return m
}

func (m *metricsController) MetricsHTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instruments a HTTP handler
func (m *metricsController) WrapHTTPServer(actual http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats := httpsnoop.CaptureMetrics(actual, w, r)

		m.httpRequests.With(prometheus.Labels{
			"code":   strconv.Itoa(stats.Code),
			"method": r.Method,
		}).Inc()
	})
}

func (m *metricsController) ObserveRender(accuracy humantime.Accuracy, tense humantime.Tense) {
	m.renders.With(prometheus.Labels{
		"accuracy": accuracy.String(),
		"tense":    tense.String(),
	}).Inc()
}
