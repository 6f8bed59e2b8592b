package otel

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "freightmatch"

const (
	defaultProtocol    = "grpc"
	defaultSampler     = "parentbased_traceidratio"
	defaultSamplerArg  = "1.0"
	defaultServiceVers = "dev"
)

func noopShutdown(context.Context) error { return nil }

// Init installs the global tracer provider and W3C propagators.
// Exporter failures degrade to the global no-op provider instead of failing startup.
func Init(ctx context.Context) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if os.Getenv("OTEL_SDK_DISABLED") == "true" {
		slog.Info("tracing_configured", "component", "tracing", "tracing_enabled", false)
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(getEnv("OTEL_SERVICE_NAME", DefaultServiceName)),
			semconv.ServiceVersionKey.String(getEnv("OTEL_SERVICE_VERSION", defaultServiceVers)),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	protocol := getEnvNonEmpty("OTEL_EXPORTER_OTLP_PROTOCOL", defaultProtocol)
	exporter, err := newExporter(ctx, protocol)
	if err != nil {
		slog.Error("tracing_init_failed", "component", "tracing", "otlp_protocol", protocol, "error", err)
		return noopShutdown, nil
	}

	samplerName := getEnvNonEmpty("OTEL_TRACES_SAMPLER", defaultSampler)
	samplerArg := getEnvNonEmpty("OTEL_TRACES_SAMPLER_ARG", defaultSamplerArg)

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(samplerFrom(samplerName, samplerArg)),
	)
	otel.SetTracerProvider(tp)

	slog.Info("tracing_configured",
		"component", "tracing",
		"tracing_enabled", true,
		"otlp_protocol", protocol,
		"otlp_endpoint", getEnvNonEmpty("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		"sampler", samplerName,
		"sampler_arg", samplerArg,
	)

	return tp.Shutdown, nil
}

// newExporter builds the OTLP exporter for the given OTEL_EXPORTER_OTLP_PROTOCOL value.
// Endpoint and headers come from the standard OTEL_EXPORTER_OTLP_* variables.
func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvNonEmpty(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// samplerFrom maps the OTEL_TRACES_SAMPLER names onto SDK samplers.
// An unparsable or out-of-range ratio samples everything.
func samplerFrom(name, arg string) trace.Sampler {
	ratio := 1.0
	if r, err := strconv.ParseFloat(arg, 64); err == nil && r >= 0 && r <= 1 {
		ratio = r
	}

	switch name {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio)
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
