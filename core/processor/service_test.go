package processor

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"newsbrief/core/domain"
	coreerrors "newsbrief/core/errors"
)

// articlesWithLinks builds n articles with distinct links and summaries
func articlesWithLinks(n int) []domain.Article {
	articles := make([]domain.Article, n)
	for i := range articles {
		articles[i] = domain.Article{
			Title:   "Article " + strconv.Itoa(i),
			Link:    "https://example.com/" + strconv.Itoa(i),
			Summary: "summary " + strconv.Itoa(i),
			Source:  "Example Feed",
		}
	}
	return articles
}

// echoSummarizer returns a summary derived from its input
func echoSummarizer() *mockSummarizer {
	return &mockSummarizer{
		summarizeFunc: func(_ context.Context, text string) (string, error) {
			return "summary of: " + text, nil
		},
	}
}

func TestNewDeduplicationOnly(t *testing.T) {
	deps, _ := testDeps()

	svc := NewDeduplicationOnly(deps, Options{})

	if svc == nil {
		t.Fatal("NewDeduplicationOnly returned nil")
	}
	if svc.Summarizing() {
		t.Error("deduplication-only processor should not report summarizing")
	}
	if svc.maxArticles != DefaultMaxArticles {
		t.Errorf("maxArticles = %d, want %d", svc.maxArticles, DefaultMaxArticles)
	}
}

func TestNewWithSummarizer(t *testing.T) {
	deps, _ := testDeps()

	svc := NewWithSummarizer(deps, echoSummarizer(), &mockPacer{}, Options{MaxArticles: 5})

	if !svc.Summarizing() {
		t.Error("processor with summarizer should report summarizing")
	}
	if svc.maxArticles != 5 {
		t.Errorf("maxArticles = %d, want 5", svc.maxArticles)
	}
}

func TestProcess_DeduplicatesByLink(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	articles := []domain.Article{
		{Title: "First copy", Link: "https://example.com/same"},
		{Title: "Second copy", Link: "https://example.com/same"},
		{Title: "Different", Link: "https://example.com/other"},
	}

	got := svc.Process(context.Background(), articles)

	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	if got[0].Title != "First copy" {
		t.Errorf("first occurrence should win, got title %q", got[0].Title)
	}
	if got[1].Link != "https://example.com/other" {
		t.Errorf("second article = %s, want the distinct link", got[1].Link)
	}
}

func TestProcess_PreservesFirstSeenOrder(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	articles := []domain.Article{
		{Title: "C", Link: "https://example.com/c"},
		{Title: "A", Link: "https://example.com/a"},
		{Title: "C again", Link: "https://example.com/c"},
		{Title: "B", Link: "https://example.com/b"},
		{Title: "A again", Link: "https://example.com/a"},
	}

	got := svc.Process(context.Background(), articles)

	wantLinks := []string{"https://example.com/c", "https://example.com/a", "https://example.com/b"}
	if len(got) != len(wantLinks) {
		t.Fatalf("got %d articles, want %d", len(got), len(wantLinks))
	}
	for i, link := range wantLinks {
		if got[i].Link != link {
			t.Errorf("got[%d].Link = %s, want %s", i, got[i].Link, link)
		}
	}
}

func TestProcess_Idempotent(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	articles := []domain.Article{
		{Title: "A", Link: "https://example.com/a"},
		{Title: "A copy", Link: "https://example.com/a"},
		{Title: "B", Link: "https://example.com/b"},
	}

	once := svc.Process(context.Background(), articles)
	twice := svc.Process(context.Background(), once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Link != twice[i].Link {
			t.Errorf("second pass changed order at %d: %s vs %s", i, once[i].Link, twice[i].Link)
		}
	}
}

func TestProcess_DropsLinklessArticles(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	articles := []domain.Article{
		{Title: "No link at all"},
		{Title: "Good", Link: "https://example.com/good"},
	}

	got := svc.Process(context.Background(), articles)

	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1", len(got))
	}
	if got[0].Link != "https://example.com/good" {
		t.Errorf("kept article = %s, want the linked one", got[0].Link)
	}
}

func TestProcess_DegradedModeAttachesNothing(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	articles := articlesWithLinks(3)

	got := svc.Process(context.Background(), articles)

	if len(got) != 3 {
		t.Fatalf("got %d articles, want 3", len(got))
	}
	for _, a := range got {
		if a.AISummary != "" {
			t.Errorf("degraded mode attached an AI summary to %s", a.Link)
		}
		if a.Score != 0 {
			t.Errorf("degraded mode assigned a score to %s", a.Link)
		}
	}
}

func TestProcess_SummarizesEachArticle(t *testing.T) {
	deps, _ := testDeps()
	summarizer := echoSummarizer()
	svc := NewWithSummarizer(deps, summarizer, &mockPacer{}, Options{})
	articles := articlesWithLinks(3)

	got := svc.Process(context.Background(), articles)

	if len(got) != 3 {
		t.Fatalf("got %d articles, want 3", len(got))
	}
	for i, a := range got {
		want := "summary of: summary " + strconv.Itoa(i)
		if a.AISummary != want {
			t.Errorf("got[%d].AISummary = %q, want %q", i, a.AISummary, want)
		}
		if a.Score == 0 {
			t.Errorf("got[%d].Score = 0, want assigned score", i)
		}
	}
	if summarizer.callCount() != 3 {
		t.Errorf("summarizer calls = %d, want 3", summarizer.callCount())
	}
}

func TestProcess_OneFailureDoesNotAbort(t *testing.T) {
	deps, logger := testDeps()
	summarizer := &mockSummarizer{
		summarizeFunc: func(_ context.Context, text string) (string, error) {
			if text == "summary 2" {
				return "", errors.New("model unavailable")
			}
			return "ok: " + text, nil
		},
	}
	svc := NewWithSummarizer(deps, summarizer, &mockPacer{}, Options{})
	articles := articlesWithLinks(5)

	got := svc.Process(context.Background(), articles)

	if len(got) != 5 {
		t.Fatalf("got %d articles, want all 5 kept", len(got))
	}
	summarized := 0
	for _, a := range got {
		if a.AISummary != "" {
			summarized++
		}
	}
	if summarized != 4 {
		t.Errorf("summarized = %d, want 4 (one failure)", summarized)
	}
	if got[2].AISummary != "" {
		t.Errorf("failed article should carry no AI summary, got %q", got[2].AISummary)
	}
	if !logger.has("summarization failed") {
		t.Error("expected a 'summarization failed' warning")
	}
}

func TestProcess_QuotaFailureLogsRateLimit(t *testing.T) {
	deps, logger := testDeps()
	summarizer := &mockSummarizer{
		summarizeFunc: func(_ context.Context, _ string) (string, error) {
			return "", &coreerrors.ExternalAPIError{StatusCode: 429, Message: "quota exceeded", API: "gemini"}
		},
	}
	svc := NewWithSummarizer(deps, summarizer, &mockPacer{}, Options{})

	got := svc.Process(context.Background(), articlesWithLinks(1))

	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1", len(got))
	}
	if got[0].AISummary != "" {
		t.Error("quota-limited article should carry no AI summary")
	}
	if !logger.has("summarization rate limited") {
		t.Error("expected a 'summarization rate limited' warning")
	}
	if summarizer.callCount() != 1 {
		t.Errorf("summarizer calls = %d, want exactly 1 (no retry)", summarizer.callCount())
	}
}

func TestProcess_PacesBetweenCalls(t *testing.T) {
	deps, _ := testDeps()
	pacer := &mockPacer{}
	svc := NewWithSummarizer(deps, echoSummarizer(), pacer, Options{})

	svc.Process(context.Background(), articlesWithLinks(3))

	if pacer.pauseCount() != 2 {
		t.Errorf("pauses = %d, want 2 (between 3 calls)", pacer.pauseCount())
	}
}

func TestProcess_NoPauseBeforeFirstCall(t *testing.T) {
	deps, _ := testDeps()
	pacer := &mockPacer{}
	svc := NewWithSummarizer(deps, echoSummarizer(), pacer, Options{})

	svc.Process(context.Background(), articlesWithLinks(1))

	if pacer.pauseCount() != 0 {
		t.Errorf("pauses = %d, want 0 for a single call", pacer.pauseCount())
	}
}

func TestProcess_RespectsMaxArticles(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{MaxArticles: 50})

	got := svc.Process(context.Background(), articlesWithLinks(60))

	if len(got) != 50 {
		t.Errorf("got %d articles, want 50 (capped)", len(got))
	}
}

func TestProcess_SkipsSummarizationWithoutText(t *testing.T) {
	deps, _ := testDeps()
	summarizer := echoSummarizer()
	svc := NewWithSummarizer(deps, summarizer, &mockPacer{}, Options{})
	articles := []domain.Article{
		{Title: "Bare", Link: "https://example.com/bare"},
	}

	got := svc.Process(context.Background(), articles)

	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1 (kept without summary)", len(got))
	}
	if got[0].AISummary != "" {
		t.Error("article without text should carry no AI summary")
	}
	if summarizer.callCount() != 0 {
		t.Errorf("summarizer calls = %d, want 0", summarizer.callCount())
	}
}

func TestProcess_UsesContentWhenAvailable(t *testing.T) {
	deps, _ := testDeps()
	summarizer := echoSummarizer()
	svc := NewWithSummarizer(deps, summarizer, &mockPacer{}, Options{})
	articles := []domain.Article{
		{
			Title:   "Rich",
			Link:    "https://example.com/rich",
			Summary: "thin summary",
			Content: "full extracted body text",
		},
	}

	got := svc.Process(context.Background(), articles)

	if got[0].AISummary != "summary of: full extracted body text" {
		t.Errorf("AISummary = %q, want summary built from content", got[0].AISummary)
	}
}

func TestProcess_StopsOnCancelledContext(t *testing.T) {
	deps, _ := testDeps()
	svc := NewDeduplicationOnly(deps, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.Process(ctx, articlesWithLinks(5))

	if len(got) != 0 {
		t.Errorf("got %d articles, want 0 with cancelled context", len(got))
	}
}

func TestProcess_StopsWhenPauseInterrupted(t *testing.T) {
	deps, _ := testDeps()
	pacer := &mockPacer{err: context.Canceled}
	svc := NewWithSummarizer(deps, echoSummarizer(), pacer, Options{})

	got := svc.Process(context.Background(), articlesWithLinks(3))

	if len(got) != 1 {
		t.Errorf("got %d articles, want 1 (stop at first interrupted pause)", len(got))
	}
}

func TestRankByScore(t *testing.T) {
	articles := []domain.Article{
		{Title: "low", Link: "https://example.com/low", Score: 3.5},
		{Title: "high", Link: "https://example.com/high", Score: 9.0},
		{Title: "mid-first", Link: "https://example.com/mid1", Score: 6.0},
		{Title: "mid-second", Link: "https://example.com/mid2", Score: 6.0},
	}

	ranked := RankByScore(articles)

	wantOrder := []string{"high", "mid-first", "mid-second", "low"}
	for i, title := range wantOrder {
		if ranked[i].Title != title {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Title, title)
		}
	}

	// Input must stay untouched
	if articles[0].Title != "low" {
		t.Error("RankByScore mutated its input")
	}
}

func TestRankByScore_EmptyInput(t *testing.T) {
	ranked := RankByScore(nil)

	if len(ranked) != 0 {
		t.Errorf("RankByScore(nil) returned %d articles, want 0", len(ranked))
	}
}
