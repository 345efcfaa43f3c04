package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medcourier_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medcourier_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RegisterMetrics registers the HTTP metrics, mounts /metrics and installs
// the instrumentation middleware.
func RegisterMetrics(e *echo.Echo) {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Use(instrument)
}

func instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)

		route := ctx.Path()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request().Method

		requestsTotal.WithLabelValues(method, route,
			strconv.Itoa(ctx.Response().Status)).Inc()
		requestDuration.WithLabelValues(method, route).
			Observe(time.Since(start).Seconds())

		return err
	}
}
