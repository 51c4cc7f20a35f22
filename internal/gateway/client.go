package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// TokenSource yields the current bearer token, if any. The session manager
// implements it; the client never caches the token itself.
type TokenSource interface {
	Token() (string, bool)
}

// Client speaks to the upstream creche API. It is the only component allowed
// to touch the network: entity stores and services go through it. Idempotent
// GETs run under the retry strategy; mutations are sent exactly once so a
// transport failure never risks a duplicate write.
type Client struct {
	http           *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
	strategy       retry.Strategy
	log            logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		log:     log,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// SetTokenSource is wired after construction: the session manager needs the
// client for login, the client needs the session for everything else.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SetUnauthorizedHook registers the callback fired when an authenticated call
// comes back 401. The session manager uses it to expire itself.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// statusError carries a non-2xx upstream response until the per-entity
// wrapper maps it onto a domain sentinel.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.code, e.body)
}

func isStatus(err error, code int) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == code
}

// getJSON fetches an idempotent resource under the retry strategy.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return retry.Do(func() error {
		return c.send(ctx, http.MethodGet, path, nil, out)
	}, c.strategy)
}

// send performs a single authenticated request. A 401 fires the unauthorized
// hook, transport errors and 5xx map to ErrGatewayUnavailable, and any other
// non-2xx surfaces as a statusError for the caller to classify.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	token := ""
	if c.tokens != nil {
		if t, ok := c.tokens.Token(); ok {
			token = t
		}
	}

	err := c.request(ctx, method, path, token, body, out)
	if isStatus(err, http.StatusUnauthorized) {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrSessionExpired)
	}
	return err
}

func (c *Client) request(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, domain.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, domain.ErrGatewayUnavailable)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: %w", method, path, &statusError{code: resp.StatusCode, body: string(raw)})
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// parseTimestamp handles the upstream's assorted creation-time formats.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
