// ABOUTME: Processor service deduplicates articles and enriches them with AI summaries
// ABOUTME: Degrades to deduplication-only when no summarizer is configured

package processor

import (
	"context"
	"sort"

	"newsbrief/core/domain"
	"newsbrief/core/errors"
	"newsbrief/core/interfaces"
)

// DefaultMaxArticles bounds how many articles one run processes
const DefaultMaxArticles = 50

// Options configures the processor; zero values take defaults.
type Options struct {
	// MaxArticles bounds the number of articles kept per run
	MaxArticles int
}

// Service implements article processing operations
type Service struct {
	deps        interfaces.Dependencies
	summarizer  interfaces.Summarizer
	pacer       interfaces.Pacer
	maxArticles int
}

// NewDeduplicationOnly creates a processor that only deduplicates.
// Used when no AI credential is configured.
func NewDeduplicationOnly(deps interfaces.Dependencies, opts Options) *Service {
	return newService(deps, nil, nil, opts)
}

// NewWithSummarizer creates a processor that deduplicates, scores, and
// summarizes articles sequentially, pacing consecutive AI calls.
func NewWithSummarizer(deps interfaces.Dependencies, summarizer interfaces.Summarizer, pacer interfaces.Pacer, opts Options) *Service {
	return newService(deps, summarizer, pacer, opts)
}

func newService(deps interfaces.Dependencies, summarizer interfaces.Summarizer, pacer interfaces.Pacer, opts Options) *Service {
	if opts.MaxArticles <= 0 {
		opts.MaxArticles = DefaultMaxArticles
	}
	return &Service{
		deps:        deps,
		summarizer:  summarizer,
		pacer:       pacer,
		maxArticles: opts.MaxArticles,
	}
}

// Summarizing reports whether this processor generates AI summaries
func (s *Service) Summarizing() bool {
	return s.summarizer != nil
}

// Process deduplicates articles by link, keeping the first occurrence and
// preserving first-seen order. When a summarizer is configured, each kept
// article is scored and summarized; a failed summarization leaves the
// article in place without an AI summary and never aborts the run.
func (s *Service) Process(ctx context.Context, articles []domain.Article) []domain.Article {
	kept := make([]domain.Article, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))
	calls := 0

	for _, article := range articles {
		if ctx.Err() != nil {
			s.deps.Logger.Warn("processing interrupted", map[string]interface{}{
				"processed": len(kept),
			})
			break
		}

		if len(kept) >= s.maxArticles {
			s.deps.Logger.Info("article limit reached", map[string]interface{}{
				"limit": s.maxArticles,
			})
			break
		}

		if article.Link == "" {
			s.deps.Logger.Debug("dropping article without link", map[string]interface{}{
				"title": article.Title,
			})
			continue
		}

		if _, dup := seen[article.Link]; dup {
			s.deps.Logger.Debug("dropping duplicate article", map[string]interface{}{
				"link": article.Link,
			})
			continue
		}
		seen[article.Link] = struct{}{}

		if s.summarizer != nil {
			article.Score = scoreArticle(article)

			text := article.BestText()
			if text == "" {
				s.deps.Logger.Debug("no text to summarize", map[string]interface{}{
					"link": article.Link,
				})
			} else {
				if calls > 0 && s.pacer != nil {
					if err := s.pacer.Pause(ctx); err != nil {
						s.deps.Logger.Warn("processing interrupted", map[string]interface{}{
							"processed": len(kept),
						})
						break
					}
				}
				calls++
				article.AISummary = s.summarize(ctx, article.Link, text)
			}
		}

		kept = append(kept, article)
	}

	return kept
}

// summarize performs a single summarization attempt and returns the
// summary, or empty when the attempt failed.
func (s *Service) summarize(ctx context.Context, link, text string) string {
	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		if errors.IsQuota(err) {
			s.deps.Logger.Warn("summarization rate limited", map[string]interface{}{
				"link":  link,
				"error": err.Error(),
			})
		} else {
			s.deps.Logger.Warn("summarization failed", map[string]interface{}{
				"link":  link,
				"error": err.Error(),
			})
		}
		return ""
	}

	s.deps.Logger.Info("article summarized", map[string]interface{}{
		"link": link,
	})
	return summary
}

// RankByScore returns a copy of the articles ordered by descending score.
// Articles with equal scores keep their relative order.
func RankByScore(articles []domain.Article) []domain.Article {
	ranked := make([]domain.Article, len(articles))
	copy(ranked, articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
