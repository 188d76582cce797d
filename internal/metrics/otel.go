package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	TextfilePath string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a Prometheus registry and an optional OTLP exporter.
// The returned flush function writes the registry to TextfilePath (when set, in the
// node-exporter textfile format) and shuts the meter provider down, pushing any pending OTLP data.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "sports-snapshots"
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider, cfg.ServiceName)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	flush := func(c context.Context) error {
		var errs []error
		if cfg.TextfilePath != "" {
			if err := prometheus.WriteToTextfile(cfg.TextfilePath, gatherer); err != nil {
				errs = append(errs, fmt.Errorf("write metrics textfile: %w", err))
			}
		}
		if err := provider.Shutdown(c); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	}

	return rec, flush, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx               context.Context
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	snapshotWrites    metric.Int64Counter
	snapshotBytes     metric.Int64Histogram
	workflowRuns      metric.Int64Counter
	workflowItems     metric.Int64Histogram
	workflowLatencyMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider, name string) (*otelInstruments, error) {
	meter := provider.Meter(name)

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("provider_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	snapshotWrites, err := meter.Int64Counter("snapshot_writes_total")
	if err != nil {
		return nil, err
	}
	snapshotBytes, err := meter.Int64Histogram("snapshot_size_bytes")
	if err != nil {
		return nil, err
	}
	workflowRuns, err := meter.Int64Counter("workflow_runs_total")
	if err != nil {
		return nil, err
	}
	workflowItems, err := meter.Int64Histogram("workflow_items")
	if err != nil {
		return nil, err
	}
	workflowLatency, err := meter.Float64Histogram("workflow_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               context.Background(),
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		rateLimitHits:     rateLimitHits,
		snapshotWrites:    snapshotWrites,
		snapshotBytes:     snapshotBytes,
		workflowRuns:      workflowRuns,
		workflowItems:     workflowItems,
		workflowLatencyMs: workflowLatency,
	}, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	opt := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, opt)
	o.providerLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), opt)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, opt)
	}
}

func (o *otelInstruments) recordRateLimit(provider string) {
	if o == nil {
		return
	}
	o.rateLimitHits.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrProvider, provider)))
}

func (o *otelInstruments) recordSnapshotWrite(name string, size int, err error) {
	if o == nil {
		return
	}
	opt := metric.WithAttributes(
		attribute.String(AttrSnapshot, name),
		attribute.String(AttrOutcome, outcome(err)),
	)
	o.snapshotWrites.Add(o.ctx, 1, opt)
	if err == nil {
		o.snapshotBytes.Record(o.ctx, int64(size), opt)
	}
}

func (o *otelInstruments) recordWorkflow(workflow string, duration time.Duration, items int, err error) {
	if o == nil {
		return
	}
	opt := metric.WithAttributes(
		attribute.String(AttrWorkflow, workflow),
		attribute.String(AttrOutcome, outcome(err)),
	)
	o.workflowRuns.Add(o.ctx, 1, opt)
	o.workflowItems.Record(o.ctx, int64(items), opt)
	o.workflowLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), opt)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
