// ABOUTME: Mock implementations of core interfaces for feed service tests
// ABOUTME: Uses function fields so each test configures only what it needs

package feed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"newsbrief/core/interfaces"
)

// mockHTTPClient implements interfaces.HTTPClient
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
	getCalls []string
	mu       sync.Mutex
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("get not implemented")
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body)
	}
	return nil, errors.New("post not implemented")
}

// mockResponse implements interfaces.Response
type mockResponse struct {
	statusCode int
	body       io.ReadCloser
	header     http.Header
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return m.body
}

func (m *mockResponse) Header() http.Header {
	if m.header == nil {
		return http.Header{}
	}
	return m.header
}

// mockCache implements interfaces.Cache
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockLogger implements interfaces.Logger and records messages
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }

// mockPacer implements interfaces.Pacer and counts pauses
type mockPacer struct {
	mu     sync.Mutex
	pauses int
	err    error
}

func (m *mockPacer) Pause(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	return m.err
}

func (m *mockPacer) pauseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

// testDeps builds Dependencies with sane mock defaults
func testDeps(client *mockHTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
}
