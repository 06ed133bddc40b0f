// ABOUTME: Feed service fetches RSS/Atom feeds sequentially and shapes entries into articles
// ABOUTME: Isolates per-feed failures so one broken feed never aborts the run

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsbrief/core/domain"
	"newsbrief/core/errors"
	"newsbrief/core/interfaces"
	htmlutil "newsbrief/pkg/utils/html"
	"newsbrief/pkg/utils/text"
)

const (
	// DefaultMaxEntriesPerFeed bounds how many entries are taken per feed
	DefaultMaxEntriesPerFeed = 10

	// DefaultSummaryMaxLen caps summaries in runes, marker included
	DefaultSummaryMaxLen = 500

	defaultCacheTTL = time.Hour
)

// Options configures the feed service; zero values take defaults.
type Options struct {
	// MaxEntriesPerFeed bounds entries taken from the top of each feed
	MaxEntriesPerFeed int

	// SummaryMaxLen caps summary length in runes
	SummaryMaxLen int

	// CacheTTL is how long fetched feeds stay cached
	CacheTTL time.Duration

	// Pacer spaces out consecutive feed fetches; nil disables pacing
	Pacer interfaces.Pacer
}

// Service implements feed fetching operations
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new feed service with the given dependencies
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.MaxEntriesPerFeed <= 0 {
		opts.MaxEntriesPerFeed = DefaultMaxEntriesPerFeed
	}
	if opts.SummaryMaxLen <= 0 {
		opts.SummaryMaxLen = DefaultSummaryMaxLen
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &Service{
		deps: deps,
		opts: opts,
	}
}

// FetchAll fetches every feed in order and returns the collected articles.
// Feeds that fail to fetch or parse are logged and skipped. Article order
// follows feed order, then entry order within each feed.
func (s *Service) FetchAll(ctx context.Context, feedURLs []string) []domain.Article {
	articles := make([]domain.Article, 0, len(feedURLs)*s.opts.MaxEntriesPerFeed)

	for i, feedURL := range feedURLs {
		if ctx.Err() != nil {
			s.deps.Logger.Warn("fetch interrupted", map[string]interface{}{
				"remaining_feeds": len(feedURLs) - i,
			})
			break
		}

		if i > 0 && s.opts.Pacer != nil {
			if err := s.opts.Pacer.Pause(ctx); err != nil {
				s.deps.Logger.Warn("fetch interrupted", map[string]interface{}{
					"remaining_feeds": len(feedURLs) - i,
				})
				break
			}
		}

		fetched, err := s.fetchOne(ctx, feedURL)
		if err != nil {
			s.deps.Logger.Warn("skipping feed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
			continue
		}

		s.deps.Logger.Info("fetched feed", map[string]interface{}{
			"url":      feedURL,
			"articles": len(fetched),
		})
		articles = append(articles, fetched...)
	}

	return articles
}

// fetchOne retrieves and parses a single feed
func (s *Service) fetchOne(ctx context.Context, feedURL string) ([]domain.Article, error) {
	if err := validateURL(feedURL); err != nil {
		return nil, err
	}

	if cached := s.getCachedArticles(ctx, feedURL); cached != nil {
		s.deps.Logger.Debug("feed served from cache", map[string]interface{}{
			"url": feedURL,
		})
		return cached, nil
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, &errors.FeedFetchError{URL: feedURL, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.FeedFetchError{
			URL:     feedURL,
			Message: fmt.Sprintf("unexpected status code %d", resp.StatusCode()),
		}
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil {
		return nil, &errors.FeedFetchError{URL: feedURL, Message: "parse failed: " + err.Error()}
	}

	if len(parsed.Items) == 0 {
		s.deps.Logger.Warn("feed has no entries", map[string]interface{}{
			"url": feedURL,
		})
		return []domain.Article{}, nil
	}

	articles := s.convertItems(parsed, feedURL)
	s.cacheArticles(ctx, feedURL, articles)

	return articles, nil
}

// convertItems shapes the first entries of a parsed feed into articles.
// Entries without a link are dropped; they cannot be deduplicated or cited.
func (s *Service) convertItems(parsed *gofeed.Feed, feedURL string) []domain.Article {
	source := sourceName(parsed, feedURL)

	limit := s.opts.MaxEntriesPerFeed
	if len(parsed.Items) < limit {
		limit = len(parsed.Items)
	}

	articles := make([]domain.Article, 0, limit)
	for _, item := range parsed.Items[:limit] {
		if item == nil || strings.TrimSpace(item.Link) == "" {
			s.deps.Logger.Debug("dropping entry without link", map[string]interface{}{
				"source": source,
				"title":  itemTitle(item),
			})
			continue
		}

		articles = append(articles, domain.Article{
			Title:      itemTitle(item),
			Link:       strings.TrimSpace(item.Link),
			Summary:    s.shapeSummary(item),
			Source:     source,
			Author:     authorName(item),
			Categories: item.Categories,
			Published:  publishedTime(item),
		})
	}

	return articles
}

// shapeSummary strips markup from the entry summary and caps its length
func (s *Service) shapeSummary(item *gofeed.Item) string {
	raw := item.Description
	if raw == "" {
		raw = item.Content
	}
	return text.Truncate(htmlutil.StripHTML(raw), s.opts.SummaryMaxLen)
}

// itemTitle returns the entry title or the placeholder
func itemTitle(item *gofeed.Item) string {
	if item == nil {
		return domain.PlaceholderTitle
	}
	if title := strings.TrimSpace(item.Title); title != "" {
		return title
	}
	return domain.PlaceholderTitle
}

// sourceName resolves a human-readable feed name, falling back from the
// feed title to the site host, then the feed URL host.
func sourceName(parsed *gofeed.Feed, feedURL string) string {
	if title := strings.TrimSpace(parsed.Title); title != "" {
		return title
	}
	if host := hostOf(parsed.Link); host != "" {
		return host
	}
	if host := hostOf(feedURL); host != "" {
		return host
	}
	return domain.UnknownSource
}

// hostOf extracts the hostname from a URL, empty on failure
func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// authorName returns the entry author name when the feed provides one
func authorName(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	return ""
}

// publishedTime returns the entry publication time, zero when unknown
func publishedTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

// validateURL checks that a feed URL is well-formed
func validateURL(feedURL string) error {
	if feedURL == "" {
		return &errors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	parsed, err := url.Parse(feedURL)
	if err != nil {
		return &errors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &errors.ValidationError{Field: "url", Message: "URL scheme must be http or https"}
	}

	return nil
}

// getCachedArticles returns previously fetched articles for a feed, or nil
func (s *Service) getCachedArticles(ctx context.Context, feedURL string) []domain.Article {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(feedURL))
	if err != nil || data == nil {
		return nil
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		s.deps.Logger.Debug("discarding invalid feed cache entry", map[string]interface{}{
			"url": feedURL,
		})
		_ = s.deps.Cache.Delete(ctx, cacheKey(feedURL))
		return nil
	}

	return articles
}

// cacheArticles stores fetched articles; cache failures are not fatal
func (s *Service) cacheArticles(ctx context.Context, feedURL string, articles []domain.Article) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(articles)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, cacheKey(feedURL), data, s.opts.CacheTTL); err != nil {
		s.deps.Logger.Debug("failed to cache feed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
	}
}

// cacheKey builds the cache key for a feed URL
func cacheKey(feedURL string) string {
	return "feed:" + feedURL
}
