package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/persona-chat/internal/domain"
)

func (c *Client) CreateUser(ctx context.Context, name, email, password string) (domain.UserID, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("password", password)

	var created struct {
		UserID domain.UserID `json:"user_id"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/users",
		form:        form,
		anonymous:   true,
		description: "create user",
	}, &created)
	if err != nil {
		return "", err
	}

	return created.UserID, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/users", description: "list users"}, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/users/me", description: "get current user"}, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, update domain.UserUpdate) (domain.User, error) {
	form := updateForm(update)
	form.Set("old_password", update.OldPassword)

	var user domain.User
	err := c.do(ctx, request{
		method:      http.MethodPatch,
		path:        "/users/me",
		form:        form,
		description: "update current user",
	}, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        "/users/" + segment(string(id)),
		description: "get user",
	}, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id domain.UserID, update domain.UserUpdate) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		method:      http.MethodPatch,
		path:        "/users/" + segment(string(id)),
		form:        updateForm(update),
		description: "update user",
	}, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/users/" + segment(string(id)),
		description: "delete user",
	}, nil)
}

func updateForm(update domain.UserUpdate) url.Values {
	form := url.Values{}
	if update.Name != nil {
		form.Set("name", *update.Name)
	}
	if update.Email != nil {
		form.Set("email", *update.Email)
	}
	if update.Password != nil {
		form.Set("password", *update.Password)
	}

	return form
}
