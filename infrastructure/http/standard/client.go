// ABOUTME: Standard HTTP client implementation with configurable retry and timeout support
// ABOUTME: Provides GET retry with exponential backoff; POST is always a single attempt

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsbrief/core/interfaces"
)

const userAgent = "newsbrief/1.0"

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client     *http.Client
	maxRetries int
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
// and number of GET attempts. Values below 1 mean a single attempt.
func NewStandardHTTPClient(timeout time.Duration, maxRetries int) *StandardHTTPClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
	}
}

// Get performs an HTTP GET request, retrying 5xx responses and transport
// errors with exponential backoff when more than one attempt is configured.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms ...
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Close body for retry
		if attempt < c.maxRetries-1 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			resp = nil
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request with a JSON body; a single attempt,
// since request bodies cannot be replayed safely.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the response headers
func (r *httpResponse) Header() http.Header {
	return r.headers
}
