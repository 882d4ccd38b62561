package observability

import (
	"context"
	"time"

	"career-pivot/internal/common/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Observability bundles the otel meter and tracer providers used by the
// engine and workers.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
	analyses       otelmetric.Int64Counter
	duration       otelmetric.Float64Histogram
	log            logger.Logger
}

// New wires a Prometheus-backed MeterProvider and, when tracing is enabled,
// a TracerProvider. Failures degrade to no-op instruments.
func New(serviceName string, tracing TracingOptions, log logger.Logger) *Observability {
	o := &Observability{log: log}

	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("prometheus exporter unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		o.meterProvider = metric.NewMeterProvider(metric.WithReader(exporter))
		otel.SetMeterProvider(o.meterProvider)

		meter := o.meterProvider.Meter(serviceName)
		o.analyses, _ = meter.Int64Counter(
			"analyses.processed",
			otelmetric.WithDescription("Number of career analyses processed"),
		)
		o.duration, _ = meter.Float64Histogram(
			"analysis.duration",
			otelmetric.WithDescription("Career analysis duration"),
			otelmetric.WithUnit("ms"),
		)
	}

	tp, err := NewTracerProvider(serviceName, tracing)
	if err != nil {
		log.Warn("tracer provider unavailable", map[string]interface{}{"error": err.Error()})
	}
	if tp != nil {
		o.tracerProvider = tp
		otel.SetTracerProvider(tp)
		o.tracer = tp.Tracer(serviceName)
	} else {
		o.tracer = otel.Tracer(serviceName)
	}

	return o
}

// Tracer returns the tracer engine stages open spans on.
func (o *Observability) Tracer() trace.Tracer {
	return o.tracer
}

func (o *Observability) RecordAnalysis(ctx context.Context, rating string, elapsed time.Duration, cached bool) {
	attrs := otelmetric.WithAttributes(
		attribute.String("rating", rating),
		attribute.Bool("cached", cached),
	)
	if o.analyses != nil {
		o.analyses.Add(ctx, 1, attrs)
	}
	if o.duration != nil {
		o.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil {
			o.log.Warn("meter provider shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			o.log.Warn("tracer provider shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
