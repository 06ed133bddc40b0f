package reader

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"newsbrief/core/domain"
	"newsbrief/core/interfaces"
)

// mockLogger implements interfaces.Logger
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testService(extract ExtractFunc, opts Options) *Service {
	opts.Extract = extract
	return NewService(interfaces.Dependencies{Logger: &mockLogger{}}, opts)
}

func TestNewService_AppliesDefaults(t *testing.T) {
	svc := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, Options{})

	if svc.opts.MinSummaryLen != DefaultMinSummaryLen {
		t.Errorf("MinSummaryLen = %d, want %d", svc.opts.MinSummaryLen, DefaultMinSummaryLen)
	}
	if svc.opts.MaxContentLen != DefaultMaxContentLen {
		t.Errorf("MaxContentLen = %d, want %d", svc.opts.MaxContentLen, DefaultMaxContentLen)
	}
	if svc.opts.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", svc.opts.Timeout, defaultTimeout)
	}
	if svc.opts.Extract == nil {
		t.Error("Extract should default to the readability extractor")
	}
}

func TestEnrichAll_SkipsRichSummaries(t *testing.T) {
	called := 0
	extract := func(_ string, _ time.Duration) (string, error) {
		called++
		return "text", nil
	}
	svc := testService(extract, Options{MinSummaryLen: 160})
	articles := []domain.Article{
		{Link: "https://example.com/rich", Summary: strings.Repeat("a", 200)},
	}

	got := svc.EnrichAll(context.Background(), articles)

	if called != 0 {
		t.Errorf("extract called %d times, want 0 for rich summaries", called)
	}
	if got[0].Content != "" {
		t.Error("rich-summary article should not be enriched")
	}
}

func TestEnrichAll_EnrichesThinSummaries(t *testing.T) {
	extract := func(pageURL string, _ time.Duration) (string, error) {
		if pageURL != "https://example.com/thin" {
			t.Errorf("extract URL = %s, want the article link", pageURL)
		}
		return "  full body text  ", nil
	}
	svc := testService(extract, Options{MinSummaryLen: 160})
	articles := []domain.Article{
		{Link: "https://example.com/thin", Summary: "too short"},
	}

	got := svc.EnrichAll(context.Background(), articles)

	if got[0].Content != "full body text" {
		t.Errorf("Content = %q, want trimmed extracted text", got[0].Content)
	}
}

func TestEnrichAll_ExtractionFailureLeavesArticle(t *testing.T) {
	extract := func(_ string, _ time.Duration) (string, error) {
		return "", errors.New("page unreachable")
	}
	svc := testService(extract, Options{})
	articles := []domain.Article{
		{Link: "https://example.com/fail", Summary: "thin"},
	}

	got := svc.EnrichAll(context.Background(), articles)

	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1 (failure never drops articles)", len(got))
	}
	if got[0].Content != "" {
		t.Error("failed extraction should leave Content empty")
	}
}

func TestEnrichAll_CapsContentLength(t *testing.T) {
	extract := func(_ string, _ time.Duration) (string, error) {
		return strings.Repeat("b", 5000), nil
	}
	svc := testService(extract, Options{MaxContentLen: 4000})
	articles := []domain.Article{
		{Link: "https://example.com/long", Summary: "thin"},
	}

	got := svc.EnrichAll(context.Background(), articles)

	if length := utf8.RuneCountInString(got[0].Content); length != 4000 {
		t.Errorf("Content length = %d, want 4000", length)
	}
}

func TestEnrichAll_EmptyExtractionSkipped(t *testing.T) {
	extract := func(_ string, _ time.Duration) (string, error) {
		return "   \n  ", nil
	}
	svc := testService(extract, Options{})
	articles := []domain.Article{
		{Link: "https://example.com/blank", Summary: "thin"},
	}

	got := svc.EnrichAll(context.Background(), articles)

	if got[0].Content != "" {
		t.Errorf("Content = %q, want empty for whitespace-only extraction", got[0].Content)
	}
}

func TestEnrichAll_StopsOnCancelledContext(t *testing.T) {
	called := 0
	extract := func(_ string, _ time.Duration) (string, error) {
		called++
		return "text", nil
	}
	svc := testService(extract, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.EnrichAll(ctx, []domain.Article{
		{Link: "https://example.com/a", Summary: "thin"},
	})

	if called != 0 {
		t.Errorf("extract called %d times, want 0 with cancelled context", called)
	}
}
