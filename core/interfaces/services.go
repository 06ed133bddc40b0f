// ABOUTME: Service interfaces define the contracts for core business operations
// ABOUTME: Used by the command layer to stay decoupled from concrete services

package interfaces

import (
	"context"

	"newsbrief/core/domain"
)

// FeedFetcher retrieves articles from a set of RSS/Atom feeds.
// Per-feed failures are logged and skipped, never propagated.
type FeedFetcher interface {
	// FetchAll fetches every feed in order and returns the collected
	// articles in feed order, then entry order within each feed
	FetchAll(ctx context.Context, feedURLs []string) []domain.Article
}

// ArticleProcessor deduplicates and optionally enriches articles
type ArticleProcessor interface {
	// Process returns the processed articles, preserving first-seen order
	Process(ctx context.Context, articles []domain.Article) []domain.Article

	// Summarizing reports whether an AI summarizer is wired in
	Summarizing() bool
}

// SiteResolver discovers feed URLs for plain website URLs
type SiteResolver interface {
	// Resolve returns the feed URLs discovered for the given sites;
	// sites with no discoverable feed are logged and skipped
	Resolve(ctx context.Context, siteURLs []string) []string
}

// ContentEnricher augments articles with full extracted text
type ContentEnricher interface {
	// EnrichAll populates Content for articles whose summaries are too
	// thin to summarize well; extraction failures leave articles unchanged
	EnrichAll(ctx context.Context, articles []domain.Article) []domain.Article
}
