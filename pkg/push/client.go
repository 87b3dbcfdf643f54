// Package push provides a client for the push-notification provider's
// batch-send API.
//
// The whole batch goes out in a single HTTP call; the provider reports a
// per-message outcome so a stale token does not fail the rest of the batch.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notification is the visible part of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AndroidNotification carries Android-specific delivery options.
type AndroidNotification struct {
	Sound string `json:"sound"`
}

// Android wraps the Android-specific section of a message.
type Android struct {
	Notification AndroidNotification `json:"notification"`
}

// Message is one notification addressed to one device token.
type Message struct {
	Token        string            `json:"token"`
	Notification Notification      `json:"notification"`
	Android      Android           `json:"android"`
	Data         map[string]string `json:"data,omitempty"`
}

// SendResponse is the per-message outcome, positionally aligned with the
// batch input.
type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResponse is the aggregate result of one batch-send call.
type BatchResponse struct {
	SuccessCount int            `json:"success_count"`
	FailureCount int            `json:"failure_count"`
	Responses    []SendResponse `json:"responses"`
}

// Client sends notification batches to the push provider.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a push client for the given provider endpoint.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type batchRequest struct {
	Messages []Message `json:"messages"`
}

// SendBatch submits all messages in one call and returns the per-message
// outcomes. A transport error or a non-2xx status fails the whole batch.
func (c *Client) SendBatch(ctx context.Context, messages []Message) (*BatchResponse, error) {
	body, err := json.Marshal(batchRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("marshal batch: %w", err)
	}

	url := c.endpoint + "/v1/messages:batchSend"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("push provider error: %s", resp.Status)
	}

	var batch BatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}

	return &batch, nil
}
