package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient implements Client against the prediction service's REST
// API. The request is attempted exactly once; the only timeout is the
// one carried by the underlying http.Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the configured endpoint.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *HTTPClient) Predict(ctx context.Context, q Questionnaire) (*Result, error) {
	payload, err := json.Marshal(buildRequest(q))
	if err != nil {
		return nil, fmt.Errorf("marshal prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrServiceUnavailable{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ErrServiceUnavailable{Err: err}
	}

	if resp.StatusCode >= 500 {
		return nil, &ErrServiceUnavailable{Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ErrInvalidResponse{
			Content: body,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return validateResponse(body)
}
