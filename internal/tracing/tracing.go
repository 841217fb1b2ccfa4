package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type ShutdownFunc func(context.Context) error

// Setup installs the global tracer provider exporting over OTLP/HTTP. With no
// exporter endpoint configured tracing stays off and the returned shutdown is
// a no-op.
func Setup(ctx context.Context, cfg config.OTel, version string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if cfg.ExporterEndpoint == "" {
		slog.Info("Tracing disabled, no exporter endpoint configured")

		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint))
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(version),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	)

	otel.SetTracerProvider(provider)

	slog.Info("✅ Tracing enabled", slog.String("endpoint", cfg.ExporterEndpoint), slog.Float64("sampler_ratio", cfg.SamplerRatio))

	return provider.Shutdown, nil
}
