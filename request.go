package aihorde

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-openapi/runtime"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// call describes one API operation.
type call struct {
	op     string
	method string
	path   []string
	query  url.Values
	body   any
}

// do sends the request described by cl and decodes the response into out.
// Every failure comes back as an *Error.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	ctx, span := c.tracer.Start(ctx, "aihorde."+cl.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", cl.method),
			attribute.String("aihorde.operation", cl.op),
		),
	)
	defer span.End()

	err := c.send(ctx, span, cl, out)
	if err != nil {
		var herr *Error
		if errors.As(err, &herr) {
			span.SetAttributes(attribute.String("aihorde.error.kind", herr.Kind.String()))
			if herr.Kind == KindAPI {
				span.SetAttributes(attribute.String("aihorde.error.code", herr.Code.String()))
			}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) send(ctx context.Context, span trace.Span, cl call, out any) error {
	u := c.baseURL.JoinPath(cl.path...)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}
	span.SetAttributes(attribute.String("url.path", u.Path))

	var body io.Reader = http.NoBody
	if cl.body != nil {
		buf := new(bytes.Buffer)
		if err := c.producer.Produce(buf, cl.body); err != nil {
			return newError(KindInvalidRequest, cl.op, "cannot encode request body", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return newError(KindTransport, cl.op, "cannot create request", err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerClientAgent, c.clientAgent)
	req.Header.Set(runtime.HeaderAccept, runtime.JSONMime)
	if cl.body != nil {
		req.Header.Set(runtime.HeaderContentType, runtime.JSONMime)
	}

	c.logger.V(1).Info("sending request", "op", cl.op, "method", cl.method, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return newError(KindTransport, cl.op, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.V(1).Info("received response", "op", cl.op, "status", resp.StatusCode,
		"contentLength", resp.ContentLength)

	return c.decodeResponse(cl.op, resp, out)
}
