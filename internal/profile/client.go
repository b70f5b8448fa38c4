// Package profile fetches the student profile JSON from the upstream API.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when the upstream URL or token is missing.
var ErrNotConfigured = errors.New("profile api not configured")

// bodyExcerptLimit caps how much of an upstream error body lands in our error
// message.
const bodyExcerptLimit = 300

// Client fetches profile payloads with a static bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a profile client. URL and token may be empty; Fetch
// reports ErrNotConfigured in that case so callers can decide how to degrade.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		token:   strings.TrimSpace(token),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the latest profile JSON. Responses are never cached; the
// upstream data changes whenever the student edits their profile.
func (c *Client) Fetch(ctx context.Context) (json.RawMessage, error) {
	if c.baseURL == "" || c.token == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch profile: %d %s - %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), excerpt(body))
	}
	if !json.Valid(body) {
		return nil, errors.New("fetch profile: upstream returned invalid JSON")
	}
	return json.RawMessage(body), nil
}

func excerpt(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > bodyExcerptLimit {
		return text[:bodyExcerptLimit]
	}
	return text
}
