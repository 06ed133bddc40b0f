package domain

import (
	"strings"
	"testing"
)

func TestNewArticle_ValidInput(t *testing.T) {
	article, err := NewArticle("Go 1.23 released", "https://example.com/go-123", "The Go team released...", "Example Blog")

	if err != nil {
		t.Fatalf("NewArticle returned error: %v", err)
	}
	if article.Title != "Go 1.23 released" {
		t.Errorf("Title = %s, want 'Go 1.23 released'", article.Title)
	}
	if article.Link != "https://example.com/go-123" {
		t.Errorf("Link = %s, want 'https://example.com/go-123'", article.Link)
	}
}

func TestNewArticle_EmptyTitleGetsPlaceholder(t *testing.T) {
	article, err := NewArticle("", "https://example.com/a", "summary", "Example Blog")

	if err != nil {
		t.Fatalf("NewArticle returned error: %v", err)
	}
	if article.Title != PlaceholderTitle {
		t.Errorf("Title = %s, want %s", article.Title, PlaceholderTitle)
	}
}

func TestNewArticle_EmptySourceGetsPlaceholder(t *testing.T) {
	article, err := NewArticle("Headline", "https://example.com/a", "summary", "")

	if err != nil {
		t.Fatalf("NewArticle returned error: %v", err)
	}
	if article.Source != UnknownSource {
		t.Errorf("Source = %s, want %s", article.Source, UnknownSource)
	}
}

func TestNewArticle_EmptyLinkReturnsError(t *testing.T) {
	article, err := NewArticle("Headline", "", "summary", "Example Blog")

	if err == nil {
		t.Error("NewArticle should return error for empty link")
	}
	if article != nil {
		t.Error("NewArticle should return nil article for empty link")
	}
}

func TestValidate_RelativeLinkReturnsError(t *testing.T) {
	article := &Article{
		Title: "Headline",
		Link:  "/posts/123",
	}

	err := article.Validate()

	if err == nil {
		t.Error("Validate should reject a relative link")
	}
	if err != nil && !strings.Contains(err.Error(), "absolute") {
		t.Errorf("Validate error = %v, want mention of absolute", err)
	}
}

func TestValidate_ValidArticle(t *testing.T) {
	article := &Article{
		Title: "Headline",
		Link:  "https://example.com/posts/123",
	}

	if err := article.Validate(); err != nil {
		t.Errorf("Validate returned error for valid article: %v", err)
	}
}

func TestHasAISummary(t *testing.T) {
	tests := []struct {
		name      string
		aiSummary string
		want      bool
	}{
		{"empty", "", false},
		{"present", "A concise summary.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{AISummary: tt.aiSummary}
			if got := a.HasAISummary(); got != tt.want {
				t.Errorf("HasAISummary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestText_PrefersContent(t *testing.T) {
	a := Article{Summary: "short summary", Content: "full extracted text"}

	if got := a.BestText(); got != "full extracted text" {
		t.Errorf("BestText() = %s, want full extracted text", got)
	}
}

func TestBestText_FallsBackToSummary(t *testing.T) {
	a := Article{Summary: "short summary"}

	if got := a.BestText(); got != "short summary" {
		t.Errorf("BestText() = %s, want short summary", got)
	}
}
