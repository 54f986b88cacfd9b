package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

// Register creates a new account. The session is not touched: a fresh
// account is not auto-logged-in.
func (c *Client) Register(ctx context.Context, req models.UserRegister) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token. The token endpoint requires a
// form-encoded body, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token models.TokenResponse
	if err := c.doForm(ctx, http.MethodPost, loginPath, form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me fetches the current user's identity.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Health probes backend liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil, nil)
}
