package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one webhook delivery attempt
const DefaultTimeout = 5 * time.Second

// Client posts notification payloads to an external webhook. A blank URL
// disables delivery entirely, which is the default for local development.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new webhook client
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Enabled reports whether a webhook URL is configured
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Send posts a JSON payload to the webhook
func (c *Client) Send(ctx context.Context, kind string, payload interface{}) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"kind":    kind,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification rejected with status %d", resp.StatusCode)
	}
	return nil
}
