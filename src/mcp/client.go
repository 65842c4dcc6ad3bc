// Package mcp is the client for the companion ticket inventory and payment
// service. The service owns events, reservations, payment intents, and the
// agent wallet; this process only issues tool-style HTTP calls against it.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// callTimeout bounds every companion-service call. Calls are not retried; a
// timeout is reported once as a terminal error for the request.
const callTimeout = 10 * time.Second

// Client talks to one companion service instance.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL (e.g. http://localhost:3000).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: callTimeout},
	}
}

// BaseURL reports the configured server address, used in error messages.
func (c *Client) BaseURL() string { return c.baseURL }

// CallTool POSTs parameters to /mcp/tool/{name} and decodes the JSON reply.
// A 402 Payment Required status is a valid, expected response carrying
// payment instructions, not an error; only transport faults and other
// non-2xx statuses fail.
func (c *Client) CallTool(ctx context.Context, name string, params map[string]any) (map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode parameters: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/mcp/tool/%s", c.baseURL, name), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MCP server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPaymentRequired &&
		(resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, fmt.Errorf("MCP server returned status %d for tool %s", resp.StatusCode, name)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode MCP response: %w", err)
	}
	return result, nil
}

// GetBalance fetches the agent wallet state via GET /mcp/tool/get_balance.
func (c *Client) GetBalance(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/mcp/tool/get_balance", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MCP server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("MCP server returned status %d for get_balance", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode MCP response: %w", err)
	}
	return result, nil
}
