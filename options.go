package aihorde

import (
	"net/http"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	apiKey         string
	baseURL        string
	clientAgent    string
	httpClient     *http.Client
	logger         logr.Logger
	tracerProvider trace.TracerProvider
	validate       bool
}

// WithAPIKey sets the API key. An empty key keeps the anonymous key.
func WithAPIKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.apiKey = key
		}
	}
}

// WithBaseURL points the client at another horde, e.g. a staging instance.
// Invalid URLs fall back to [DefaultBaseURL].
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithClientAgent sets the Client-Agent header. The horde expects
// "name:version:contact".
func WithClientAgent(agent string) Option {
	return func(o *options) {
		if agent != "" {
			o.clientAgent = agent
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts belong here: the SDK
// does not impose one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger. Requests and responses are logged at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithRequestValidation makes [Client.Submit] run
// [GenerationRequest.Validate] before sending. It is off by default and the
// horde remains the authority on what it accepts.
func WithRequestValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}
