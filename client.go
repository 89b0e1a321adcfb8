package aihorde

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-logr/logr"
	"github.com/go-openapi/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public AI Horde v2 API.
	DefaultBaseURL = "https://aihorde.net/api/v2"

	// AnonymousAPIKey is the shared key of the anonymous account. It works
	// for every endpoint but has the lowest queue priority.
	AnonymousAPIKey = "0000000000"

	// ProjectURL identifies this SDK in the default client agent.
	ProjectURL = "https://github.com/lapismyt/aihorde-go"

	headerAPIKey      = "apikey"
	headerClientAgent = "Client-Agent"

	tracerName = "github.com/lapismyt/aihorde-go"
)

// DefaultClientAgent is the Client-Agent header value used when none is
// configured. The horde uses it to attribute traffic to client software.
var DefaultClientAgent = fmt.Sprintf("aihorde-go:%s:%s", Version, ProjectURL)

// Client is the AI Horde API client.
//
// A Client is immutable once built and safe for concurrent use. It does not
// retry, cache or rate-limit; see [WaitForCompletion] for an opt-in polling
// helper.
type Client struct {
	apiKey      string
	baseURL     *url.URL
	clientAgent string
	httpClient  *http.Client
	logger      logr.Logger
	tracer      trace.Tracer
	validate    bool

	consumer runtime.Consumer
	producer runtime.Producer
}

// NewClient creates a new AI Horde client.
//
// Construction never fails. Options left out keep their defaults: the
// anonymous API key, [DefaultBaseURL] and [DefaultClientAgent]. A base URL
// override that cannot be parsed is logged and replaced by the default.
//
//	client := aihorde.NewClient(
//	    aihorde.WithAPIKey(os.Getenv("AI_HORDE_API_KEY")),
//	    aihorde.WithClientAgent("my-bot:1.2:https://example.com/my-bot"),
//	)
func NewClient(opts ...Option) *Client {
	o := options{
		apiKey:      AnonymousAPIKey,
		clientAgent: DefaultClientAgent,
		httpClient:  http.DefaultClient,
		logger:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	c := &Client{
		apiKey:      o.apiKey,
		baseURL:     defaultBaseURL(),
		clientAgent: o.clientAgent,
		httpClient:  o.httpClient,
		logger:      o.logger.WithName("aihorde"),
		tracer:      tp.Tracer(tracerName, trace.WithInstrumentationVersion(Version)),
		validate:    o.validate,
		consumer:    runtime.JSONConsumer(),
		producer:    runtime.JSONProducer(),
	}

	if o.baseURL != "" {
		u, err := ParseBaseURL(o.baseURL)
		if err != nil {
			c.logger.Error(err, "invalid base URL, using default", "baseURL", o.baseURL, "default", DefaultBaseURL)
		} else {
			c.baseURL = u
		}
	}

	return c
}

func defaultBaseURL() *url.URL {
	u, err := url.Parse(DefaultBaseURL)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseBaseURL validates a base URL override. It must be an absolute http
// or https URL. Failures are KindInvalidURL errors.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, newError(KindInvalidURL, "ParseBaseURL", "cannot parse base URL", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, newError(KindInvalidURL, "ParseBaseURL", fmt.Sprintf("base URL %q is not absolute", raw), nil)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newError(KindInvalidURL, "ParseBaseURL", fmt.Sprintf("unsupported scheme %q", u.Scheme), nil)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u, nil
}

// ClientConfig is a read-only copy of a client's connection settings.
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	ClientAgent string
}

// String masks the API key.
func (c ClientConfig) String() string {
	return fmt.Sprintf("{APIKey:%s BaseURL:%s ClientAgent:%s}", maskKey(c.APIKey), c.BaseURL, c.ClientAgent)
}

func maskKey(key string) string {
	if key == AnonymousAPIKey || len(key) <= 4 {
		return key
	}
	return key[:2] + "****" + key[len(key)-2:]
}

// Config returns the settings the client ended up with after defaults and
// fallbacks were applied.
func (c *Client) Config() ClientConfig {
	return ClientConfig{
		APIKey:      c.apiKey,
		BaseURL:     c.baseURL.String(),
		ClientAgent: c.clientAgent,
	}
}
