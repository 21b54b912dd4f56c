package gstin

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by the options handler.
type Metrics struct {
	// Requests counts handled requests. Labels: code
	Requests *prometheus.CounterVec

	// OptionsReturned tracks how many GSTINs a successful lookup returned.
	OptionsReturned prometheus.Histogram
}

// NewMetrics creates and registers the handler collectors on registry, or on
// the default registerer when registry is nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gstin_option_requests_total",
				Help: "Total number of GSTIN option requests by response status",
			},
			[]string{"code"},
		),
		OptionsReturned: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gstin_options_returned",
				Help:    "Number of GSTIN options returned per successful lookup",
				Buckets: []float64{0, 1, 2, 5, 10, 25},
			},
		),
	}
}

func (m *Metrics) observeRequest(code int) {
	if m == nil || m.Requests == nil {
		return
	}
	m.Requests.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m *Metrics) observeOptions(n int) {
	if m == nil || m.OptionsReturned == nil {
		return
	}
	m.OptionsReturned.Observe(float64(n))
}

// statusWriter remembers the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}
