// Package api is the REST client for the task-management backend. It owns
// the error taxonomy, the bearer-token transport, and one file per
// resource (auth, users, tasks, categories).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/client/session"
	"github.com/taskdeck/taskdeck/internal/logging"
)

const loginPath = "/auth/login"

// Client talks to the backend. All methods honor ctx and map failures to
// the package error taxonomy; no call is retried automatically.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client whose transport attaches the session's bearer token
// and reacts to authentication failures (see BearerTransport). redirect is
// invoked after a 401 teardown and may be nil.
func New(baseURL string, sessions *session.Store, redirect func(), timeout time.Duration, log logging.Logger) *Client {
	transport := NewBearerTransport(nil, sessions, redirect, log)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
		log:     log,
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON sends a JSON request (body may be nil) and decodes a JSON
// response into out (out may be nil for empty responses).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// doForm posts form-encoded data, the contract of the token endpoint.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, path, out)
}

// doMultipart uploads a single file under the given form field.
func (c *Client) doMultipart(ctx context.Context, method, path, field, filename string, file []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, path, out)
}

// doBytes fetches a raw payload (file downloads).
func (c *Client) doBytes(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, nil), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return nil, c.statusError(path, resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) send(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps an HTTP failure to the taxonomy. A 401 on the login
// endpoint means bad credentials; a 401 anywhere else means the session
// expired (the transport has already cleared it by now). Everything else
// with a structured body becomes a *ValidationError.
func (c *Client) statusError(path string, status int, body []byte) error {
	if status == http.StatusUnauthorized {
		if path == loginPath {
			return ErrInvalidCredentials
		}
		return ErrAuthExpired
	}
	return decodeValidationError(status, body)
}
