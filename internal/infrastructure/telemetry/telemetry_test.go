package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mrops-br/shirt-search-api/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.FromViper(config.New())
	cfg.OTLP.Enabled = false
	cfg.OTLP.ServiceName = "shirt-search-test"
	cfg.OTLP.Environment = "test"
	return cfg
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestNewLogger_AddsServiceIdentity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewLogger(&buf, testConfig()).Info("hello")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0]["msg"])
	assert.Equal(t, "shirt-search-test", records[0]["service.name"])
	assert.Equal(t, "test", records[0]["environment"])
	assert.NotContains(t, records[0], "trace_id")
}

func TestNewLogger_InjectsTraceAndRoute(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = WithHTTPRoute(ctx, "/shirts/{id}")

	var buf bytes.Buffer
	NewLogger(&buf, testConfig()).With("component", "test").InfoContext(ctx, "inside span")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, span.SpanContext().TraceID().String(), records[0]["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), records[0]["span_id"])
	assert.Equal(t, "/shirts/{id}", records[0]["http.route"])
	assert.Equal(t, "test", records[0]["component"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Log.Level = config.ParseLogLevel("warn")

	var buf bytes.Buffer
	logger := NewLogger(&buf, cfg)
	logger.Info("dropped")
	logger.Warn("kept")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0]["msg"])
}

func TestHTTPRouteFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, HTTPRouteFromContext(context.Background()))
}

func TestFromConfig_NoOpServesMetrics(t *testing.T) {
	var buf bytes.Buffer
	telem, err := FromConfig(context.Background(), testConfig(), &buf)
	require.NoError(t, err)
	assert.Nil(t, telem.conn)

	counter, err := telem.MeterProvider.Meter(InstrumentationName).Int64Counter("shirts.test.total")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	telem.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shirts_test_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	require.NoError(t, telem.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "no-op mode")
	assert.Contains(t, buf.String(), "OpenTelemetry shutdown successfully")
}
