package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape renders the provider registry in Prometheus text format.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

// assertSample checks for a sample of name whose labels match the labels pattern.
func assertSample(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func newTestBusinessMetrics(t *testing.T, namespace string) (*Provider, BusinessMetrics) {
	t.Helper()
	provider, err := NewProvider(namespace)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	bm, err := NewBusinessMetrics(provider.MeterProvider(), namespace)
	require.NoError(t, err)
	return provider, bm
}

func TestBusinessMetrics_Operations(t *testing.T) {
	provider, bm := newTestBusinessMetrics(t, "ops")
	ctx := context.Background()

	calls := []struct {
		operation string
		status    string
		duration  time.Duration
	}{
		{"generate_batch", "success", 40 * time.Microsecond},
		{"generate_batch", "success", 60 * time.Microsecond},
		{"generate_batch", "error", 10 * time.Microsecond},
		{"encode", "success", 5 * time.Microsecond},
		{"decode", "error", 3 * time.Microsecond},
		{"validate", "success", time.Millisecond},
	}
	for _, c := range calls {
		bm.RecordOperation(ctx, "identifier", c.operation, c.status)
		bm.RecordDuration(ctx, "identifier", c.operation, c.duration, c.status)
	}

	output := scrape(t, provider)

	tests := []struct {
		name   string
		labels string
		value  string
	}{
		{"ops_operations_total", `operation="generate_batch".*status="success"`, "2"},
		{"ops_operations_total", `operation="generate_batch".*status="error"`, "1"},
		{"ops_operations_total", `operation="decode".*status="error"`, "1"},
		{"ops_operation_duration_seconds_count", `operation="generate_batch".*status="success"`, "2"},
		{"ops_operation_duration_seconds_count", `operation="validate".*status="success"`, "1"},
		{"ops_operation_duration_seconds_bucket", `operation="encode".*le="1e-05"`, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.labels, func(t *testing.T) {
			assertSample(t, output, tt.name, `domain="identifier".*`+tt.labels, tt.value)
		})
	}
}

func TestBusinessMetrics_RecordGenerated(t *testing.T) {
	provider, bm := newTestBusinessMetrics(t, "gen")
	ctx := context.Background()

	bm.RecordGenerated(ctx, "uuid", 5)
	bm.RecordGenerated(ctx, "uuid", 3)
	bm.RecordGenerated(ctx, "slug", 1)
	bm.RecordGenerated(ctx, "slug", 0)
	bm.RecordGenerated(ctx, "nanoid", -2)

	output := scrape(t, provider)

	assertSample(t, output, "gen_identifiers_generated_total", `scheme="uuid"`, "8")
	assertSample(t, output, "gen_identifiers_generated_total", `scheme="slug"`, "1")
	assertSample(t, output, "gen_batch_size_count", `scheme="uuid"`, "2")
	assertSample(t, output, "gen_batch_size_sum", `scheme="uuid"`, "8")
	assert.NotContains(t, output, `scheme="nanoid"`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()
	ctx := context.Background()

	assert.IsType(t, NoOpBusinessMetrics{}, bm)
	assert.NotPanics(t, func() {
		bm.RecordOperation(ctx, "identifier", "generate_batch", "success")
		bm.RecordDuration(ctx, "identifier", "decode", time.Millisecond, "error")
		bm.RecordGenerated(ctx, "uuid", 10)
	})
}
