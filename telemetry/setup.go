package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ScopeName is the instrumentation scope used for tracers and meters.
const ScopeName = "github.com/ccalmels/volcano"

// Options configures Setup.
type Options struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string

	// Endpoint is an OTLP/HTTP collector host:port receiving both traces and
	// metrics. Empty disables export; spans are still created so tests and
	// logs can correlate run ids.
	Endpoint string

	// Insecure disables TLS toward Endpoint.
	Insecure bool

	// Reader, if non-nil, is attached to the meter provider in addition to
	// the OTLP exporter.
	Reader sdkmetric.Reader

	// MetricInterval is the OTLP metric export period; zero keeps the SDK
	// default of one minute. Shutdown always flushes pending points.
	MetricInterval time.Duration
}

// Providers bundles the SDK providers created by Setup.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Setup builds tracer and meter providers and installs them as the global
// otel providers.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	name := opts.ServiceName
	if name == "" {
		name = "volcano"
	}
	res := resource.NewSchemaless(attribute.String("service.name", name))

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	mpOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	if opts.Reader != nil {
		mpOpts = append(mpOpts, sdkmetric.WithReader(opts.Reader))
	}
	if opts.Endpoint != "" {
		expOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			expOpts = append(expOpts, otlptracehttp.WithInsecure())
		}
		exp, err := otlptracehttp.New(ctx, expOpts...)
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))

		reader, err := newMetricReader(ctx, opts)
		if err != nil {
			_ = exp.Shutdown(ctx)
			return nil, err
		}
		mpOpts = append(mpOpts, sdkmetric.WithReader(reader))
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(tpOpts...),
		Meter:  sdkmetric.NewMeterProvider(mpOpts...),
	}
	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)

	return p, nil
}

// newMetricReader pushes metrics to the OTLP/HTTP endpoint periodically.
func newMetricReader(ctx context.Context, opts Options) (sdkmetric.Reader, error) {
	expOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		expOpts = append(expOpts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, expOpts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: otlp metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if opts.MetricInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(opts.MetricInterval))
	}

	return sdkmetric.NewPeriodicReader(exp, readerOpts...), nil
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}

	return errors.Join(p.Tracer.Shutdown(ctx), p.Meter.Shutdown(ctx))
}
