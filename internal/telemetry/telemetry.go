// Package telemetry keeps the process metrics in memory and writes ended spans to the log. Counters
// are read back on demand, e.g. to log a summary when the application stops.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const InstrumentationName = "github.com/rocketscienceinc/sensor-tictactoe"

type Telemetry struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	tracing  *sdktrace.TracerProvider
}

// New builds the meter and tracer providers. Ended spans are logged at debug level through logger.
func New(logger *slog.Logger) *Telemetry {
	reader := sdkmetric.NewManualReader()

	return &Telemetry{
		reader:   reader,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		tracing: sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(spanLogger{log: logger.With("component", "tracing")}),
		),
	}
}

// Install makes both providers the global ones so that otel.Meter and otel.Tracer pick them up.
func (that *Telemetry) Install() {
	otel.SetMeterProvider(that.provider)
	otel.SetTracerProvider(that.tracing)
}

func (that *Telemetry) Meter() metric.Meter {
	return that.provider.Meter(InstrumentationName)
}

func (that *Telemetry) Tracer() trace.Tracer {
	return that.tracing.Tracer(InstrumentationName)
}

// Totals returns the current value of every integer counter. Data points with attributes are keyed
// as name{key=value,...}.
func (that *Telemetry) Totals(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := that.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("failed to collect metrics: %w", err)
	}

	totals := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				totals[key(m.Name, dp.Attributes)] += dp.Value
			}
		}
	}

	return totals, nil
}

func (that *Telemetry) Shutdown(ctx context.Context) error {
	if err := that.tracing.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	if err := that.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}

func key(name string, attrs attribute.Set) string {
	if attrs.Len() == 0 {
		return name
	}

	return name + "{" + attrs.Encoded(attribute.DefaultEncoder()) + "}"
}

// spanLogger writes every ended span as one debug record.
type spanLogger struct {
	log *slog.Logger
}

func (that spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (that spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	args := []any{
		"span", span.Name(),
		"trace_id", span.SpanContext().TraceID().String(),
		"duration", span.EndTime().Sub(span.StartTime()),
		"status", span.Status().Code.String(),
	}

	for _, kv := range span.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}

	that.log.Debug("span ended", args...)
}

func (that spanLogger) Shutdown(context.Context) error { return nil }

func (that spanLogger) ForceFlush(context.Context) error { return nil }
