// ABOUTME: Article domain model represents a single news entry drawn from a feed
// ABOUTME: Provides validation logic to ensure article data integrity

package domain

import (
	"errors"
	"net/url"
	"time"
)

// PlaceholderTitle is substituted when a feed entry carries no title.
const PlaceholderTitle = "Untitled"

// UnknownSource is substituted when a feed exposes no usable name or host.
const UnknownSource = "Unknown Source"

// Article represents one news entry assembled from an RSS or Atom feed
type Article struct {
	// Title is the entry headline, never empty in a well-formed article
	Title string `json:"title"`

	// Link is the canonical article URL and the deduplication key
	Link string `json:"link"`

	// Summary is the plain-text entry summary, already stripped and capped
	Summary string `json:"summary"`

	// Source is the human-readable name of the originating feed
	Source string `json:"source"`

	// Author is the entry author, when the feed provides one
	Author string `json:"author,omitempty"`

	// Categories holds the entry's feed categories
	Categories []string `json:"categories,omitempty"`

	// Published is the entry publication time, zero when the feed omits it
	Published time.Time `json:"published,omitempty"`

	// Content is the full extracted article text, populated only in reader mode
	Content string `json:"content,omitempty"`

	// AISummary is the generated summary; empty when generation was
	// skipped, unavailable, or failed for this entry
	AISummary string `json:"ai_summary,omitempty"`

	// Score is the heuristic relevance score on a 1-10 scale, zero until assigned
	Score float64 `json:"score,omitempty"`
}

// NewArticle creates an Article with validation
func NewArticle(title, link, summary, source string) (*Article, error) {
	article := &Article{
		Title:   title,
		Link:    link,
		Summary: summary,
		Source:  source,
	}

	if article.Title == "" {
		article.Title = PlaceholderTitle
	}
	if article.Source == "" {
		article.Source = UnknownSource
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

// Validate checks if the article has valid required fields
func (a *Article) Validate() error {
	if a.Link == "" {
		return errors.New("article link cannot be empty")
	}

	parsed, err := url.Parse(a.Link)
	if err != nil {
		return errors.New("article link is not valid format")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("article link must be absolute")
	}

	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}

	return nil
}

// HasAISummary reports whether a generated summary is attached
func (a *Article) HasAISummary() bool {
	return a.AISummary != ""
}

// BestText returns the richest text available for summarization,
// preferring extracted content over the feed summary.
func (a *Article) BestText() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Summary
}
