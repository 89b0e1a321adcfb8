package aihorde

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// decodeResponse classifies a raw response:
//
//   - 2xx: the body is decoded into out; failure is KindMalformedBody.
//   - otherwise, a body shaped like a ValidationError becomes KindAPI.
//   - anything else is KindHTTPStatus with the raw body kept verbatim.
//
// The body is read in full. Full-status responses can embed base64 images,
// which is still bounded by the request's n.
func (c *Client) decodeResponse(op string, resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e := newError(KindIO, op, "cannot read response body", err)
		e.Status = resp.StatusCode
		return e
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := c.consumeStrict(raw, out); err != nil {
			c.logger.V(1).Info("malformed success body", "op", op, "status", resp.StatusCode, "error", err.Error())
			return &Error{
				Kind:    KindMalformedBody,
				Op:      op,
				Status:  resp.StatusCode,
				Message: "response does not match the expected shape",
				Body:    string(raw),
				Cause:   err,
			}
		}
		return nil
	}

	if verr, ok := c.parseValidationError(raw); ok {
		return &Error{
			Kind:    KindAPI,
			Op:      op,
			Status:  resp.StatusCode,
			Code:    verr.RC,
			Message: verr.Message,
			Fields:  verr.Errors,
		}
	}

	return &Error{
		Kind:   KindHTTPStatus,
		Op:     op,
		Status: resp.StatusCode,
		Body:   string(raw),
	}
}

// parseValidationError accepts a JSON object carrying a string rc field.
// Any other body, such as a proxy's HTML error page, is rejected.
func (c *Client) parseValidationError(raw []byte) (*ValidationError, bool) {
	var envelope struct {
		Message string            `json:"message"`
		RC      *ErrorCode        `json:"rc"`
		Errors  map[string]string `json:"errors"`
	}
	if err := c.consumeStrict(raw, &envelope); err != nil || envelope.RC == nil {
		return nil, false
	}
	return &ValidationError{
		Message: envelope.Message,
		RC:      *envelope.RC,
		Errors:  envelope.Errors,
	}, true
}

var (
	errNotSingleValue = errors.New("body is not a single JSON value")
	errNullBody       = errors.New("body is JSON null")
)

// consumeStrict decodes raw into out with the client's consumer. The
// consumer stops after the first value and leaves out untouched on null, so
// both trailing data and a bare null are rejected first.
func (c *Client) consumeStrict(raw []byte, out any) error {
	if !json.Valid(raw) {
		return errNotSingleValue
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errNullBody
	}
	return c.consumer.Consume(bytes.NewReader(raw), out)
}
