package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SignupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total signup attempts",
		},
		[]string{"result"}, // success|duplicate|full|not_found|bad_request
	)

	WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_withdrawals_total",
			Help: "Total withdrawal attempts",
		},
		[]string{"result"}, // success|not_found
	)

	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "activities_request_duration_seconds",
			Help:    "Duration of activity API request handling",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(SignupsTotal)
	prometheus.MustRegister(WithdrawalsTotal)
	prometheus.MustRegister(RequestDuration)
}

func Register(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
