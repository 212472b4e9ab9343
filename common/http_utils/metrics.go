package http_utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics 会话请求指标
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics 创建并注册指标
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typed_tools",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP calls issued by a session, by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "typed_tools",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP calls issued by a session.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		registered := make([]prometheus.Collector, 0, 2)
		for _, collector := range []prometheus.Collector{m.requests, m.duration} {
			if err := reg.Register(collector); err != nil {
				// 回滚已注册的指标 调用方可以重试
				for _, done := range registered {
					reg.Unregister(done)
				}
				return nil, err
			}
			registered = append(registered, collector)
		}
	}
	return m, nil
}

// observe 记录一次请求 m 为 nil 时忽略
func (m *Metrics) observe(method string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	m.requests.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
