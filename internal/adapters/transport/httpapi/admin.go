package httpapi

import (
	"context"
	"net/http"

	"github.com/bnema/persona-chat/internal/domain"
)

func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin/sessions", description: "list sessions"}, &sessions)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (c *Client) DeleteSession(ctx context.Context, id domain.SessionID) error {
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/admin/sessions/" + segment(string(id)),
		description: "revoke session",
	}, nil)
}
