// Package fiber_handle 提供 Fiber 框架的中间件处理器
//
// API 监控中间件使用示例：
//
//	metrics := fiber_handle.NewMetrics("storyhub")
//	app.Use(fiber_handle.NewAPIMonitor(fiber_handle.MonitorConfig{Metrics: metrics}, fiber_handle.SkipHealthCheck))
//	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
package fiber_handle

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 独立的 Prometheus registry 与 HTTP/媒体流指标
type Metrics struct {
	reg           *prometheus.Registry
	inflight      prometheus.Gauge
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	streamedBytes *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of inflight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed, partitioned by status code, method and route.",
		}, []string{"code", "method", "route"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of latencies for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method", "route"}),
		streamedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "bytes_total",
			Help:      "Bytes handed to media stream responses, partitioned by status code.",
		}, []string{"code"}),
	}

	reg.MustRegister(m.inflight, m.requests, m.latency, m.streamedBytes)
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// Handler Prometheus 抓取端点
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// AddStreamedBytes 累加媒体流响应的字节数
func (m *Metrics) AddStreamedBytes(status int, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.streamedBytes.WithLabelValues(strconv.Itoa(status)).Add(float64(n))
}

// MonitorConfig 监控配置
type MonitorConfig struct {
	Metrics *Metrics
}

// FilterFunc 过滤器函数类型，返回 false 表示跳过监控
type FilterFunc func(c *fiber.Ctx) bool

// NewAPIMonitor 创建 API 监控中间件
func NewAPIMonitor(config MonitorConfig, filters ...FilterFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.Metrics == nil {
			return c.Next()
		}
		for _, filter := range filters {
			if !filter(c) {
				return c.Next()
			}
		}

		m := config.Metrics
		m.inflight.Inc()
		defer m.inflight.Dec()

		startTime := time.Now()
		err := c.Next()

		// 错误由全局 ErrorHandler 写回，此时响应码尚未落定
		status := c.Response().StatusCode()
		if err != nil {
			status, _ = resolve(err)
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		// 优先使用路由模板，避免 key 把标签撑爆
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		code := strconv.Itoa(status)
		m.requests.WithLabelValues(code, c.Method(), route).Inc()
		m.latency.WithLabelValues(code, c.Method(), route).Observe(time.Since(startTime).Seconds())

		return err
	}
}

// SkipHealthCheck 健康检查过滤器，跳过健康检查端点的监控
func SkipHealthCheck(c *fiber.Ctx) bool {
	path := strings.ToLower(c.Path())
	return !strings.Contains(path, "/health")
}

// SkipMetrics 跳过 Prometheus 自身的抓取请求
func SkipMetrics(c *fiber.Ctx) bool {
	return c.Path() != "/metrics"
}

// OnlyPathStartWith 仅监控指定前缀的路径
func OnlyPathStartWith(paths ...string) FilterFunc {
	return func(c *fiber.Ctx) bool {
		for _, path := range paths {
			if strings.HasPrefix(c.Path(), path) {
				return true
			}
		}
		return false
	}
}
