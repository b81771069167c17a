package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 60 * time.Second
	requestIDHeader       = "X-Request-ID"
)

var (
	_ ports.ConversationTransport = (*Client)(nil)
	_ ports.AgentTransport        = (*Client)(nil)
	_ ports.AuthTransport         = (*Client)(nil)
	_ ports.UserTransport         = (*Client)(nil)
	_ ports.AdminSessionTransport = (*Client)(nil)
)

// TokenSource supplies the bearer token for authenticated requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// Client talks to the persona chat platform REST API.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Tokens         TokenSource
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

type request struct {
	method      string
	path        string
	form        url.Values
	jsonBody    any
	anonymous   bool
	description string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, req.path)
	if err != nil {
		return err
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.form != nil:
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.jsonBody != nil:
		payload, err := json.Marshal(req.jsonBody)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.description, err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", req.description, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeader, requestID)

	if !req.anonymous && c.Tokens != nil {
		token, err := c.Tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		c.Logger.Debug().
			Err(err).
			Str("method", req.method).
			Str("path", req.path).
			Str("request_id", requestID).
			Msg("platform request failed")
		return fmt.Errorf("%s: %w", req.description, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.Logger.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("platform request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if text, ok := out.(*string); ok {
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("read %s response: %w", req.description, err)
		}
		*text = decodeText(raw)
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.description, err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeAPIError turns a non-2xx response into a domain.APIError. The
// platform answers with a bare JSON string, a JSON object or plain text.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	message := decodeText(raw)
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	if strings.HasPrefix(message, "{") {
		message = ""
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = fmt.Sprintf("status %d", resp.StatusCode)
	}

	return &domain.APIError{Message: message, Status: resp.StatusCode}
}

func decodeText(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			return text
		}
	}

	return string(trimmed)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("server url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}

func segment(id string) string {
	return url.PathEscape(id)
}
