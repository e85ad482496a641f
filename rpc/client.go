// Package rpc implements a typed client for the node's action-based HTTP
// protocol. Every node action maps to one method on Client; each method
// performs exactly one POST and either returns a typed result or an *Error
// carrying the node-supplied message.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Error is a failure reported by the node itself, carried in the "error"
// field of an otherwise well-formed response body.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client talks to a single node's HTTP RPC endpoint. It keeps no state
// between calls; methods are safe for concurrent use.
type Client struct {
	url    string
	http   *http.Client
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client for the node RPC endpoint at url, e.g.
// "http://localhost:7076".
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		http:   &http.Client{Timeout: defaultTimeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CallRaw issues one action request and returns the raw response body after
// checking it for a node-reported error. params may be nil.
func (c *Client) CallRaw(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	body := make(map[string]any, len(params)+1)
	for k, v := range params {
		body[k] = v
	}
	body["action"] = action

	reqBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("action", action).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("rpc call")

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid response body: %w", err)
	}
	if probe.Error != "" {
		return nil, &Error{Message: probe.Error}
	}

	return data, nil
}

// Call issues one action request and decodes the response body into out.
func (c *Client) Call(ctx context.Context, action string, params map[string]any, out any) error {
	data, err := c.CallRaw(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	return nil
}

// call is the typed shorthand the method wrappers are built on.
func call[T any](ctx context.Context, c *Client, action string, params map[string]any) (T, error) {
	var out T
	err := c.Call(ctx, action, params, &out)
	return out, err
}

// successCall handles the node actions that signal success purely by the
// presence of a "success" key in the response body.
func (c *Client) successCall(ctx context.Context, action string, params ...map[string]any) (bool, error) {
	var p map[string]any
	if len(params) > 0 {
		p = params[0]
	}
	data, err := c.CallRaw(ctx, action, p)
	if err != nil {
		return false, err
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	_, ok := body["success"]
	return ok, nil
}
