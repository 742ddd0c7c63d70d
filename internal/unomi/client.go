// Package unomi is a thin REST client for the Apache Unomi customer data
// platform. It covers only the endpoints this adapter needs: profile fetch,
// profile search, scope fetch/create, and the /context.json read/write
// endpoint.
package unomi

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

	"github.com/rs/zerolog/log"
)

// ClientConfig holds connection settings for the Unomi client.
type ClientConfig struct {
	BaseURL  string
	Username string
	Password string
	// Key is the privileged third-party key, sent on every request as the
	// X-Unomi-Peer header.
	Key     string
	Timeout time.Duration
}

// Client talks to a single Unomi server.
type Client struct {
	baseURL    string
	cfg        ClientConfig
	httpClient *http.Client
}

// New creates a Unomi API client. The timeout defaults to 30 seconds when
// unset; there is no retry layer, a failed call fails once.
func New(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// doJSON issues a request with the fixed auth headers and decodes the JSON
// response body into a map. It returns the HTTP status code alongside the
// body so callers can distinguish 204 from an empty object. A nil map means
// the response had no body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (int, map[string]any, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("X-Unomi-Peer", c.cfg.Key)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Never log the key or password, only the request shape.
	log.Debug().Str("method", method).Str("path", path).Msg("unomi request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: unomi API error %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return resp.StatusCode, nil, nil
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return resp.StatusCode, result, nil
}

// GetProfile fetches a profile by its literal id.
func (c *Client) GetProfile(ctx context.Context, profileID string) (map[string]any, error) {
	_, body, err := c.doJSON(ctx, http.MethodGet, "/cxs/profiles/"+url.PathEscape(profileID), nil)
	return body, err
}

// SearchProfiles runs a condition query against the profile index.
func (c *Client) SearchProfiles(ctx context.Context, query Query) (map[string]any, error) {
	_, body, err := c.doJSON(ctx, http.MethodPost, "/cxs/profiles/search", query)
	return body, err
}

// Context posts a context request, used both for reading profile/session
// properties and for delivering events.
func (c *Client) Context(ctx context.Context, req ContextRequest) (map[string]any, error) {
	_, body, err := c.doJSON(ctx, http.MethodPost, "/context.json", req)
	return body, err
}

// GetScope fetches a scope by id. The status code is returned because the
// server answers 204 for a missing scope.
func (c *Client) GetScope(ctx context.Context, scopeID string) (int, map[string]any, error) {
	return c.doJSON(ctx, http.MethodGet, "/cxs/scopes/"+url.PathEscape(scopeID), nil)
}

// SaveScope creates (or overwrites) a scope.
func (c *Client) SaveScope(ctx context.Context, scope Scope) error {
	_, _, err := c.doJSON(ctx, http.MethodPost, "/cxs/scopes", scope)
	return err
}
