package httpapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, request{
		method:      http.MethodGet,
		path:        "/health",
		anonymous:   true,
		description: "health check",
	}, nil)
}

// Login opens a session and returns its token. The platform answers with the
// token as the whole response body.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var token string
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/session",
		form:        form,
		anonymous:   true,
		description: "login",
	}, &token)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/auth/session",
		description: "logout",
	}, nil)
}
