// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for feed, validation, and external API failures

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// FeedFetchError represents a failure to retrieve or parse a single feed
type FeedFetchError struct {
	URL     string
	Message string
}

// Error implements the error interface
func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("feed fetch failed for %s: %s", e.URL, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// CacheError represents a cache operation error
type CacheError struct {
	Operation string
	Key       string
	Message   string
}

// Error implements the error interface
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for key '%s': %s", e.Operation, e.Key, e.Message)
}

// IsFeedFetch checks if an error is a FeedFetchError
func IsFeedFetch(err error) bool {
	var fetchErr *FeedFetchError
	return errors.As(err, &fetchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsCache checks if an error is a CacheError
func IsCache(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr)
}

// IsQuota checks if an error is an external API quota rejection (HTTP 429)
func IsQuota(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
