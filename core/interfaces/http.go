// ABOUTME: HTTPClient interface defines the contract for HTTP operations
// ABOUTME: Abstracts HTTP client implementation for testability

package interfaces

import (
	"context"
	"io"
	"net/http"
)

// HTTPClient defines the interface for HTTP operations
type HTTPClient interface {
	// Get performs an HTTP GET request
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with a JSON body
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses
type Response interface {
	// StatusCode returns the HTTP status code
	StatusCode() int

	// Body returns the response body reader
	Body() io.ReadCloser

	// Header returns the response headers
	Header() http.Header
}
