package aihorde

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-openapi/strfmt"
)

// Submit starts an asynchronous image generation and returns its handle.
//
// The horde accepts the request even when no worker can serve it right now.
// Requests expire server-side after about ten minutes without progress.
// Set DryRun to get only the kudos estimate; the handle then has no ID.
//
//	handle, err := client.Submit(ctx, &aihorde.GenerationRequest{
//	    Prompt: "A photo of a cat",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(handle.ID, handle.Kudos)
func (c *Client) Submit(ctx context.Context, req *GenerationRequest) (*RequestHandle, error) {
	if req == nil {
		return nil, newError(KindInvalidRequest, "Submit", "request is required", nil)
	}
	if c.validate {
		if err := req.Validate(strfmt.Default); err != nil {
			return nil, newError(KindInvalidRequest, "Submit", "request failed validation", err)
		}
	}

	var handle RequestHandle
	err := c.do(ctx, call{
		op:     "Submit",
		method: http.MethodPost,
		path:   []string{"generate", "async"},
		body:   req,
	}, &handle)
	if err != nil {
		return nil, err
	}

	for _, w := range handle.Warnings {
		c.logger.Info("request accepted with warning", "id", handle.ID, "code", w.Code.String(), "message", w.Message)
	}
	return &handle, nil
}

// CheckStatus returns the progress of a request without its images. It is
// cheap and meant for frequent polling.
func (c *Client) CheckStatus(ctx context.Context, id string) (*StatusSnapshot, error) {
	path, err := requestPath("CheckStatus", "check", id)
	if err != nil {
		return nil, err
	}

	var status StatusSnapshot
	if err := c.do(ctx, call{op: "CheckStatus", method: http.MethodGet, path: path}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FullStatus returns the progress of a request including finished images.
//
// The response can be large and the horde limits this endpoint to 10 calls
// per minute. Poll [Client.CheckStatus] and call FullStatus once Done is set.
func (c *Client) FullStatus(ctx context.Context, id string) (*RequestStatus, error) {
	path, err := requestPath("FullStatus", "status", id)
	if err != nil {
		return nil, err
	}

	var status RequestStatus
	if err := c.do(ctx, call{op: "FullStatus", method: http.MethodGet, path: path}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Cancel stops a request. Images finished so far are returned and the
// kudos for unfinished jobs are not charged.
func (c *Client) Cancel(ctx context.Context, id string) (*RequestStatus, error) {
	path, err := requestPath("Cancel", "status", id)
	if err != nil {
		return nil, err
	}

	var status RequestStatus
	if err := c.do(ctx, call{op: "Cancel", method: http.MethodDelete, path: path}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func requestPath(op, endpoint, id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newError(KindInvalidRequest, op, "request id is required", nil)
	}
	return []string{"generate", endpoint, url.PathEscape(id)}, nil
}
