package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collects bot metrics on its own registry.
//
// Exposed series:
//   - foldingbot_commands_total{command,outcome}
//   - foldingbot_api_requests_total{endpoint,status}
//   - foldingbot_api_request_duration_seconds{endpoint}
type Prometheus struct {
	registry *prometheus.Registry

	commands    *prometheus.CounterVec
	apiRequests *prometheus.CounterVec
	apiDuration *prometheus.HistogramVec
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foldingbot",
			Name:      "commands_total",
			Help:      "Handled command invocations by command and outcome.",
		}, []string{"command", "outcome"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foldingbot",
			Name:      "api_requests_total",
			Help:      "Requests to the stats API by endpoint and status code, 0 on transport errors.",
		}, []string{"endpoint", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "foldingbot",
			Name:      "api_request_duration_seconds",
			Help:      "Stats API request latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"endpoint"}),
	}

	p.registry.MustRegister(
		p.commands,
		p.apiRequests,
		p.apiDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return p
}

func (p *Prometheus) ObserveCommand(command, outcome string) {
	p.commands.WithLabelValues(command, outcome).Inc()
}

func (p *Prometheus) ObserveAPIRequest(endpoint string, status int, duration time.Duration) {
	p.apiRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	p.apiDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
