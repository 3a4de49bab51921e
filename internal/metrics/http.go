package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// knownSchemes bounds the values of the scheme label.
var knownSchemes = map[string]struct{}{
	"uuid":    {},
	"nanoid":  {},
	"hashids": {},
	"slug":    {},
}

// httpMetrics holds the API traffic instruments.
type httpMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	size     metric.Int64Histogram
}

func newHTTPMetrics(meter metric.Meter, namespace string) (*httpMetrics, error) {
	requests, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	size, err := meter.Int64Histogram(
		fmt.Sprintf("%s_http_response_size_bytes", namespace),
		metric.WithDescription("HTTP response body size in bytes"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(128, 1024, 16384, 131072, 1048576, 8388608),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{requests: requests, duration: duration, size: size}, nil
}

func (m *httpMetrics) record(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("method", c.Request.Method),
		attribute.String("path", sanitizePath(c.FullPath())),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	}
	if scheme := schemeLabel(c); scheme != "" {
		attrs = append(attrs, attribute.String("scheme", scheme))
	}
	opt := metric.WithAttributes(attrs...)

	m.requests.Add(ctx, 1, opt)
	m.duration.Record(ctx, elapsed.Seconds(), opt)
	if size := c.Writer.Size(); size > 0 {
		m.size.Record(ctx, int64(size), opt)
	}
}

// HTTPMetricsMiddleware records request count, latency and response size per route
// pattern. Quick generation routes also carry the scheme. When the instruments cannot be
// created the middleware only forwards the request.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	m, err := newHTTPMetrics(meterProvider.Meter(namespace), namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.record(c.Request.Context(), c, time.Since(start))
	}
}

// sanitizePath returns the matched route pattern, or "unknown" for unmatched requests.
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}

// schemeLabel returns the :scheme route parameter when it names a supported scheme.
func schemeLabel(c *gin.Context) string {
	scheme := c.Param("scheme")
	if _, ok := knownSchemes[scheme]; !ok {
		return ""
	}
	return scheme
}
