package aihorde

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListActiveModels returns the models currently served by the horde.
//
//	models, err := client.ListActiveModels(ctx, aihorde.ModelFilter{
//	    Type:     aihorde.Ptr(aihorde.ModelTypeImage),
//	    MinCount: swag.Int64(10),
//	})
func (c *Client) ListActiveModels(ctx context.Context, filter ModelFilter) ([]ActiveModel, error) {
	query, err := filter.query()
	if err != nil {
		return nil, err
	}

	var models []ActiveModel
	err = c.do(ctx, call{
		op:     "ListActiveModels",
		method: http.MethodGet,
		path:   []string{"status", "models"},
		query:  query,
	}, &models)
	if err != nil {
		return nil, err
	}
	return models, nil
}

func (f ModelFilter) query() (url.Values, error) {
	query := url.Values{}
	if f.Type != nil {
		if !f.Type.IsKnown() {
			return nil, newError(KindInvalidRequest, "ListActiveModels", "model type filter is not a known value", &UnknownEnumError{Kind: "ModelType"})
		}
		query.Set("model_type", f.Type.String())
	}
	if f.MinCount != nil {
		query.Set("min_count", strconv.FormatInt(*f.MinCount, 10))
	}
	if f.MaxCount != nil {
		query.Set("max_count", strconv.FormatInt(*f.MaxCount, 10))
	}
	if f.State != nil {
		if !f.State.IsKnown() {
			return nil, newError(KindInvalidRequest, "ListActiveModels", "model state filter is not a known value", &UnknownEnumError{Kind: "ModelState"})
		}
		query.Set("state", f.State.String())
	}
	return query, nil
}

// Heartbeat checks that the horde is up and returns its version. Use
// [Heartbeat.Compatibility] to compare it with this SDK.
func (c *Client) Heartbeat(ctx context.Context) (*Heartbeat, error) {
	var hb Heartbeat
	err := c.do(ctx, call{
		op:     "Heartbeat",
		method: http.MethodGet,
		path:   []string{"status", "heartbeat"},
	}, &hb)
	if err != nil {
		return nil, err
	}
	return &hb, nil
}
