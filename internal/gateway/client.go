// Package gateway is the typed HTTP client for the backend API. One method
// per backend capability; every call sends the session cookie captured at
// login and a JSON body where applicable.
//
// Failure classes are kept strictly apart: a transport error (server
// unreachable, body undecodable) comes back as a plain wrapped error, a
// well-formed rejection as *domain.RemoteError, and the backend's
// unauthenticated discriminator as domain.ErrUnauthenticated. Callers decide
// per class; the gateway never swallows or retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to one backend instance. The zero value is not usable; build
// with New.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New builds a Client rooted at baseURL. The cookie jar holds the backend's
// session cookie between calls. No timeout is configured: the backend's own
// responsiveness is the only ceiling, and retries are never attempted.
func New(baseURL string, log zerolog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: init cookie jar: %w", err)
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Jar: jar},
		log:  log,
	}, nil
}

// do issues one request and returns the raw response. body, when non-nil, is
// JSON-encoded. Connectivity failures propagate to the caller untouched
// beyond wrapping; that is the "server unreachable" signal.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("request completed")
	return resp, nil
}

// decode drains and unmarshals the response body into target. A body that is
// not valid JSON is a transport-class failure.
func decode(resp *http.Response, target any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}
