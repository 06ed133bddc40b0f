// ABOUTME: Discovery service resolves website URLs to their RSS/Atom feed URLs
// ABOUTME: Checks well-known host patterns first, then scans page link elements

package discovery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsbrief/core/errors"
	"newsbrief/core/interfaces"
)

// Service implements feed discovery for plain website URLs
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new discovery service with the given dependencies
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Resolve returns the feed URLs discovered for the given sites, in site
// order. Sites where no feed can be discovered are logged and skipped.
func (s *Service) Resolve(ctx context.Context, siteURLs []string) []string {
	feeds := make([]string, 0, len(siteURLs))

	for i, siteURL := range siteURLs {
		if ctx.Err() != nil {
			s.deps.Logger.Warn("discovery interrupted", map[string]interface{}{
				"remaining_sites": len(siteURLs) - i,
			})
			break
		}

		feedURL, err := s.discoverFeedURL(ctx, siteURL)
		if err != nil {
			s.deps.Logger.Warn("no feed discovered for site", map[string]interface{}{
				"url":   siteURL,
				"error": err.Error(),
			})
			continue
		}

		s.deps.Logger.Info("discovered feed", map[string]interface{}{
			"site": siteURL,
			"feed": feedURL,
		})
		feeds = append(feeds, feedURL)
	}

	return feeds
}

// discoverFeedURL finds the feed URL for a single site
func (s *Service) discoverFeedURL(ctx context.Context, siteURL string) (string, error) {
	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Host == "" {
		return "", &errors.ValidationError{Field: "url", Message: "invalid site URL"}
	}

	// Hosts with fixed feed locations need no page scan
	if known := knownFeedURL(parsed); known != "" {
		return known, nil
	}

	resp, err := s.deps.HTTPClient.Get(ctx, siteURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	var feedURL string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).
		EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if href, ok := sel.Attr("href"); ok && href != "" {
				feedURL = ensureAbsoluteURL(href, parsed)
				return false
			}
			return true
		})

	if feedURL == "" {
		return "", fmt.Errorf("no feed link element found")
	}
	return feedURL, nil
}

// knownFeedURL returns the conventional feed URL for hosts that publish
// feeds at fixed paths, or empty when the host has no such convention.
func knownFeedURL(site *url.URL) string {
	host := strings.TrimPrefix(strings.ToLower(site.Hostname()), "www.")

	switch host {
	case "github.com":
		if path := strings.Trim(site.Path, "/"); path != "" {
			return site.Scheme + "://" + site.Host + "/" + path + "/commits.atom"
		}
	case "reddit.com", "old.reddit.com":
		return site.Scheme + "://" + site.Host + strings.TrimSuffix(site.Path, "/") + "/.rss"
	}

	return ""
}

// ensureAbsoluteURL resolves href against the page URL when it is relative
func ensureAbsoluteURL(href string, page *url.URL) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	return page.ResolveReference(parsed).String()
}
