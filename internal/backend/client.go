package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// maxReadRetries caps automatic retries for read requests. Write requests
// are never retried; the shopper resubmits manually on failure.
const maxReadRetries = 1

// Client talks to the commerce backend REST API. All responses arrive in a
// JSON envelope of shape {success, message?, data}; the client unwraps it
// and converts failures into typed errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new backend API client. The configured base URL is
// expected to include the /api prefix.
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Envelope is the backend's uniform response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Get performs a read request and unmarshals the envelope's data into out.
// Transport failures and 5xx responses are retried at most once.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= maxReadRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(500 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
			c.logger.Debug("Retrying backend read", zap.String("path", path))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to execute request: %w", err)
			if isRetryable(err) {
				continue
			}
			return lastErr
		}

		retry, err := c.decode(resp, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}

	return lastErr
}

// Post performs a write request and unmarshals the envelope's data into out.
// Never retried.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	_, err = c.decode(resp, out)
	return err
}

// decode unwraps the response envelope into out. The first return reports
// whether the failure is retryable for read requests (transport-shaped 5xx).
func (c *Client) decode(resp *http.Response, out interface{}) (bool, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope Envelope
	// The envelope may be absent on proxy-level failures; keep the raw
	// status in that case.
	_ = json.Unmarshal(body, &envelope)

	if resp.StatusCode >= 500 {
		c.logger.Warn("Backend API server error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", envelope.Message),
		)
		return true, &apperrors.ErrUpstream{Status: resp.StatusCode, Message: envelope.Message}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		return false, &apperrors.ErrUpstream{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil || len(envelope.Data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return false, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
