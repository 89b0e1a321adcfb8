// Package tracing exports the SDK's OpenTelemetry spans for hordectl.
package tracing

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials"
)

// Exporter names accepted in Config.Exporter.
const (
	ExporterNone     = "none"
	ExporterStdout   = "stdout"
	ExporterOTLPGRPC = "otlp"
	ExporterOTLPHTTP = "otlphttp"
)

// Config selects where spans go.
type Config struct {
	// Exporter is one of none, stdout, otlp (gRPC) or otlphttp. Empty means
	// none.
	Exporter string `yaml:"exporter"`

	// Endpoint defaults to localhost:4317 for otlp and
	// http://localhost:4318 for otlphttp.
	Endpoint string            `yaml:"endpoint"`
	Insecure bool              `yaml:"insecure"`
	Headers  map[string]string `yaml:"headers"`
}

func (c Config) exporter() string {
	name := strings.ToLower(strings.TrimSpace(c.Exporter))
	switch name {
	case "":
		return ExporterNone
	case "grpc", "otlpgrpc":
		return ExporterOTLPGRPC
	case "http":
		return ExporterOTLPHTTP
	}
	return name
}

// Enabled reports whether spans are exported at all.
func (c Config) Enabled() bool {
	return c.exporter() != ExporterNone
}

// Validate rejects unknown exporter names.
func (c Config) Validate() error {
	switch c.exporter() {
	case ExporterNone, ExporterStdout, ExporterOTLPGRPC, ExporterOTLPHTTP:
		return nil
	}
	return fmt.Errorf("tracing: unknown exporter %q", c.Exporter)
}

// Setup builds a tracer provider for cfg. The stdout exporter writes to w.
// The returned shutdown flushes pending spans and must be called before
// exit. A disabled config yields a no-op provider.
func Setup(ctx context.Context, cfg Config, service, version string, w io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if !cfg.Enabled() {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exp, err := buildExporter(ctx, cfg, w)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: creating %s exporter: %w", cfg.exporter(), err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(service),
			semconv.ServiceVersionKey.String(version),
			attribute.String("aihorde.exporter", cfg.exporter()),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	return tp, tp.Shutdown, nil
}

func buildExporter(ctx context.Context, cfg Config, w io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.exporter() {
	case ExporterOTLPGRPC:
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = "localhost:4317"
		}
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlptracegrpc.WithHeaders(cfg.Headers))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewTLS(&tls.Config{})))
		}
		return otlptracegrpc.New(ctx, opts...)
	case ExporterOTLPHTTP:
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = "http://localhost:4318"
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlptracehttp.WithHeaders(cfg.Headers))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	}
}
