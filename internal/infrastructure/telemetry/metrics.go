package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"google.golang.org/grpc"
)

// newRegistry returns the registry scraped by /metrics, preloaded with runtime collectors
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// newPrometheusReader bridges OpenTelemetry instruments into reg
func newPrometheusReader(reg prometheus.Registerer) (metric.Reader, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	return exporter, nil
}

// initMeterProvider initializes a meter provider with dual readers (OTLP push + Prometheus pull).
// A nil conn leaves only the Prometheus reader.
func initMeterProvider(
	ctx context.Context,
	conn *grpc.ClientConn,
	res *resource.Resource,
	reg prometheus.Registerer,
) (*metric.MeterProvider, error) {
	promReader, err := newPrometheusReader(reg)
	if err != nil {
		return nil, err
	}

	opts := []metric.Option{metric.WithReader(promReader)}
	if res != nil {
		opts = append(opts, metric.WithResource(res))
	}

	if conn != nil {
		exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create metric exporter: %w", err)
		}
		opts = append(opts, metric.WithReader(metric.NewPeriodicReader(exporter)))
	}

	return metric.NewMeterProvider(opts...), nil
}
