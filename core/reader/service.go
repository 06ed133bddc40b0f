// ABOUTME: Reader service extracts full article text for entries with thin summaries
// ABOUTME: Wraps go-readability behind an injectable extraction function

package reader

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"

	"newsbrief/core/domain"
	"newsbrief/core/interfaces"
	"newsbrief/pkg/utils/text"
)

const (
	// DefaultMinSummaryLen is the summary length below which extraction runs
	DefaultMinSummaryLen = 160

	// DefaultMaxContentLen caps extracted text length in runes
	DefaultMaxContentLen = 4000

	defaultTimeout = 30 * time.Second
)

// ExtractFunc fetches a page and returns its readable text content
type ExtractFunc func(pageURL string, timeout time.Duration) (string, error)

// Options configures the reader service; zero values take defaults.
type Options struct {
	// MinSummaryLen is the summary length below which extraction kicks in
	MinSummaryLen int

	// MaxContentLen caps extracted text length in runes
	MaxContentLen int

	// Timeout is the per-page extraction timeout
	Timeout time.Duration

	// Extract overrides the page extractor; nil uses go-readability
	Extract ExtractFunc
}

// Service implements full-text enrichment
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new reader service with the given dependencies
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.MinSummaryLen <= 0 {
		opts.MinSummaryLen = DefaultMinSummaryLen
	}
	if opts.MaxContentLen <= 0 {
		opts.MaxContentLen = DefaultMaxContentLen
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Extract == nil {
		opts.Extract = extractReadable
	}
	return &Service{
		deps: deps,
		opts: opts,
	}
}

// EnrichAll populates Content for articles whose summaries are too thin
// to summarize well. Extraction failures leave the article unchanged.
func (s *Service) EnrichAll(ctx context.Context, articles []domain.Article) []domain.Article {
	for i := range articles {
		if ctx.Err() != nil {
			s.deps.Logger.Warn("enrichment interrupted", map[string]interface{}{
				"remaining_articles": len(articles) - i,
			})
			break
		}

		if utf8.RuneCountInString(articles[i].Summary) >= s.opts.MinSummaryLen {
			continue
		}

		content, err := s.opts.Extract(articles[i].Link, s.opts.Timeout)
		if err != nil {
			s.deps.Logger.Debug("content extraction failed", map[string]interface{}{
				"link":  articles[i].Link,
				"error": err.Error(),
			})
			continue
		}

		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		articles[i].Content = text.Truncate(content, s.opts.MaxContentLen)
		s.deps.Logger.Debug("article enriched", map[string]interface{}{
			"link":  articles[i].Link,
			"runes": utf8.RuneCountInString(articles[i].Content),
		})
	}

	return articles
}

// extractReadable pulls the readable text from a live page
func extractReadable(pageURL string, timeout time.Duration) (string, error) {
	article, err := readability.FromURL(pageURL, timeout)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
