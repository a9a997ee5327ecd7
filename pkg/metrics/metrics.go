package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector 指标收集器
type Collector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 数据库连接池指标
	dbConnectionsOpen  prometheus.Gauge
	dbConnectionsInUse prometheus.Gauge
	dbConnectionsIdle  prometheus.Gauge
	dbWaitCount        prometheus.Gauge
}

// NewCollector 创建指标收集器，进程内只应构造一次
func NewCollector() *Collector {
	return &Collector{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		dbConnectionsOpen: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_open",
				Help: "Number of open database connections",
			},
		),
		dbConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		dbConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		dbWaitCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_wait_count",
				Help: "Total number of connections waited for",
			},
		),
	}
}

// ObserveHTTPRequest 记录一次 HTTP 请求
func (c *Collector) ObserveHTTPRequest(method, endpoint, status string, durationSeconds float64) {
	c.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// SetDBPoolStats 更新数据库连接池指标
func (c *Collector) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	c.dbConnectionsOpen.Set(float64(open))
	c.dbConnectionsInUse.Set(float64(inUse))
	c.dbConnectionsIdle.Set(float64(idle))
	c.dbWaitCount.Set(float64(waitCount))
}
