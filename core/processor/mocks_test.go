// ABOUTME: Mock implementations of core interfaces for processor tests
// ABOUTME: Uses function fields so each test configures only what it needs

package processor

import (
	"context"
	"errors"
	"sync"

	"newsbrief/core/interfaces"
)

// mockSummarizer implements interfaces.Summarizer and records inputs
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, text string) (string, error)
	mu            sync.Mutex
	inputs        []string
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, text)
	m.mu.Unlock()

	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, text)
	}
	return "", errors.New("summarize not implemented")
}

func (m *mockSummarizer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

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

func (m *mockLogger) has(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, recorded := range m.messages {
		if recorded == msg {
			return true
		}
	}
	return false
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }

// testDeps builds Dependencies with a recording logger
func testDeps() (interfaces.Dependencies, *mockLogger) {
	logger := &mockLogger{}
	return interfaces.Dependencies{Logger: logger}, logger
}
