package aihorde

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// WhoAmI returns the account that owns the configured API key.
//
//	me, err := client.WhoAmI(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s has %.0f kudos\n", me.Username, me.Kudos)
func (c *Client) WhoAmI(ctx context.Context) (*UserDetails, error) {
	var user UserDetails
	err := c.do(ctx, call{
		op:     "WhoAmI",
		method: http.MethodGet,
		path:   []string{"find_user"},
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the details of a user by numeric id. Unknown ids fail
// with a not-found error; see [IsNotFound].
func (c *Client) GetUser(ctx context.Context, id string) (*UserDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newError(KindInvalidRequest, "GetUser", "user id is required", nil)
	}

	var user UserDetails
	err := c.do(ctx, call{
		op:     "GetUser",
		method: http.MethodGet,
		path:   []string{"users", url.PathEscape(id)},
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns one page of registered users. The page size is fixed
// by the server. An empty sort means [SortByKudos].
func (c *Client) ListUsers(ctx context.Context, page int, sort UserSort) ([]UserDetails, error) {
	if page < 0 {
		return nil, newError(KindInvalidRequest, "ListUsers", "page must not be negative", nil)
	}
	if sort == "" {
		sort = SortByKudos
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("sort", string(sort))

	var users []UserDetails
	err := c.do(ctx, call{
		op:     "ListUsers",
		method: http.MethodGet,
		path:   []string{"users"},
		query:  query,
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}
