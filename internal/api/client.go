// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	xerrors "knowledgepulse-web/internal/pkg/errors"
)

type tokenCtxKey struct{}

// WithToken returns a context carrying the bearer token to attach to
// outgoing backend requests. The session middleware sets it once per
// request; registration overrides it for the profile-enrichment call.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext returns the bearer token carried by ctx, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey{}).(string)
	return token
}

// APIError carries a backend failure payload verbatim so the view layer can
// show exactly what the backend said.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Client is the configured HTTP client for the course platform backend.
// Every request carries the context's bearer token; a 401 response purges
// the session (via the registered hook) and surfaces xerrors.ErrUnauthorized.
type Client struct {
	baseURL        string
	httpc          *http.Client
	logger         *zap.Logger
	onUnauthorized func(ctx context.Context)
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// OnUnauthorized registers the hook invoked whenever the backend rejects a
// request with 401. The session service uses it to purge the cached token;
// no retry or replay happens, the user signs in again.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.send(ctx, method, path, query, body, out, true)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out interface{}, purgeOn401 bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return xerrors.Wrap(err, "failed to encode request body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return xerrors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return xerrors.Wrap(err, "backend request failed")
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return xerrors.Wrap(err, "failed to read backend response")
	}

	if res.StatusCode == http.StatusUnauthorized && purgeOn401 {
		c.logger.Warn("backend rejected bearer token",
			zap.String("method", method),
			zap.String("path", path),
		)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return xerrors.ErrUnauthorized
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: res.StatusCode, Message: errorMessage(data, res.Status)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return xerrors.Wrap(err, "failed to decode backend response")
		}
	}
	return nil
}

// errorMessage pulls the backend's error payload out of a failure body,
// falling back to the raw body and then the HTTP status line.
func errorMessage(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return status
}
