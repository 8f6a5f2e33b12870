package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mrops-br/shirt-search-api/internal/infrastructure/config"
)

// InstrumentationName names the tracer and meter used by the service
const InstrumentationName = "shirt-search-api"

// Telemetry holds all OpenTelemetry components
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Logger         *slog.Logger
	Registry       *prometheus.Registry

	conn *grpc.ClientConn
}

// NewTelemetry initializes all OpenTelemetry components and exports them to
// the configured OTLP collector. Logs are written to w.
func NewTelemetry(ctx context.Context, cfg *config.Config, w io.Writer) (*Telemetry, error) {
	logger := NewLogger(w, cfg)

	logger.Info("Initializing OpenTelemetry",
		slog.String("endpoint", cfg.OTLP.Endpoint),
		slog.String("service_name", cfg.OTLP.ServiceName),
	)

	conn, err := grpc.NewClient(cfg.OTLP.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	res, err := newResource(ctx, &cfg.OTLP)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	tp, err := initTracerProvider(ctx, conn, res)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
	}
	logger.Info("Tracer provider initialized successfully")

	reg := newRegistry()
	mp, err := initMeterProvider(ctx, conn, res, reg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
	}
	logger.Info("Meter provider initialized successfully (OTLP + Prometheus exporters)")

	t := &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Logger:         logger,
		Registry:       reg,
		conn:           conn,
	}
	t.setGlobals()
	return t, nil
}

// NewNoOpTelemetry creates a telemetry instance that exports nothing over OTLP.
// Spans are still created so logs carry trace ids, and metrics are still served on /metrics.
func NewNoOpTelemetry(cfg *config.Config, w io.Writer) (*Telemetry, error) {
	logger := NewLogger(w, cfg)

	reg := newRegistry()
	mp, err := initMeterProvider(context.Background(), nil, nil, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
	}

	t := &Telemetry{
		TracerProvider: sdktrace.NewTracerProvider(),
		MeterProvider:  mp,
		Logger:         logger,
		Registry:       reg,
	}
	t.setGlobals()

	logger.Info("Telemetry initialized in no-op mode (export disabled)")
	return t, nil
}

// FromConfig picks NewTelemetry or NewNoOpTelemetry depending on cfg.OTLP.Enabled
func FromConfig(ctx context.Context, cfg *config.Config, w io.Writer) (*Telemetry, error) {
	if !cfg.OTLP.Enabled {
		return NewNoOpTelemetry(cfg, w)
	}
	return NewTelemetry(ctx, cfg, w)
}

func (t *Telemetry) setGlobals() {
	otel.SetTracerProvider(t.TracerProvider)
	otel.SetMeterProvider(t.MeterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// MetricsHandler serves the Prometheus registry fed by the meter provider
func (t *Telemetry) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(t.Registry, promhttp.HandlerOpts{Registry: t.Registry})
}

// Shutdown flushes and stops every telemetry component, returning all failures joined
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.Logger.Info("Shutting down OpenTelemetry")

	var errs []error
	if err := t.TracerProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown tracer provider", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown meter provider", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if t.conn != nil {
		if err := t.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	t.Logger.Info("OpenTelemetry shutdown successfully")
	return nil
}
