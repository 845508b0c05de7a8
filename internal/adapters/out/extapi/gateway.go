// Package extapi provides the HTTP client adapter that hands finished order
// records to the external order API. The adapter owns transport concerns
// only; the record's shape and validity are guaranteed upstream. It performs
// no retries, retry policy belongs to the caller.
package extapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/core/ports"
)

const submitPath = "/api/v1/orders"

// Gateway posts finished order records to the external API over HTTP.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// NewGateway creates a gateway for the external API at baseURL.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit posts the record. The auth token travels as a bearer token and the
// actor role as an explicit header; neither is read from ambient state.
func (g *Gateway) Submit(ctx context.Context, record ports.SubmissionRecord, actorRole string, authToken string) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal submission record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)
	req.Header.Set("X-Actor-Role", actorRole)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit order %s: %w", record.OrderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("submit order %s: external api returned %d: %s",
			record.OrderID, resp.StatusCode, string(detail))
	}

	return nil
}
