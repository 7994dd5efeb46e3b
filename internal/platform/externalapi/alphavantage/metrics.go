package alphavantage

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics はプロバイダ呼び出しの結果とレイテンシを記録します。
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics はコレクタを reg に登録します。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "market_provider_requests_total",
				Help: "Total number of Alpha Vantage calls by function and outcome",
			},
			[]string{"function", "outcome"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "market_provider_request_duration_seconds",
				Help:    "Duration of Alpha Vantage calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"function"},
		),
	}
}

// observe は nil レシーバの場合は何もしません。
func (m *Metrics) observe(function string, env Envelope, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !env.Success {
		outcome = env.Kind.String()
	}
	m.requests.WithLabelValues(function, outcome).Inc()
	m.latency.WithLabelValues(function).Observe(elapsed.Seconds())
}
