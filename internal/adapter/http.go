package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/logger"
)

//go:generate mockgen -source=http.go -destination=../mocks/mock_http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient

// HTTPClient abstracts outbound HTTP calls to third-party APIs so that
// services can be tested without network access. JSON responses are
// decoded into result when result is non-nil.
type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string, result interface{}) error
	Post(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient returns an HTTPClient with the given request timeout.
// Requests rejected with 429 are retried with exponential backoff.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &httpClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (h *httpClient) Get(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	return h.do(ctx, http.MethodGet, url, headers, nil, result)
}

func (h *httpClient) Post(ctx context.Context, url string, headers map[string]string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	return h.do(ctx, http.MethodPost, url, headers, payload, result)
}

func (h *httpClient) do(ctx context.Context, method, url string, headers map[string]string, payload []byte, result interface{}) error {
	resp, err := h.doRequestWithRetry(ctx, method, url, headers, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

// doRequestWithRetry performs the request, retrying with exponential
// backoff while the server responds with 429.
func (h *httpClient) doRequestWithRetry(ctx context.Context, method, url string, headers map[string]string, payload []byte) (*http.Response, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var resp *http.Response

	err := backoff.Retry(func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err = h.client.Do(req) //nolint:bodyclose
		if err != nil {
			return backoff.Permanent(err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			logger.WarnCtx(ctx, "rate limited, retrying request",
				zap.String("url", url))
			return fmt.Errorf("rate limited: %s", url)
		}

		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// HTTPError is returned when a third-party API responds with a
// non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}
