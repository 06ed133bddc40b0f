// ABOUTME: Heuristic article scoring on a 1-10 scale
// ABOUTME: Rewards credible sources, substantive summaries, and timely topics

package processor

import (
	"strings"
	"unicode/utf8"

	"newsbrief/core/domain"
)

// Scoring term lists, matched case-insensitively as substrings.
var (
	credibleSources = []string{"bbc", "reuters", "bloomberg", "cnn", "npr", "guardian", "associated press"}
	techSources     = []string{"techcrunch", "the verge", "ars technica", "venturebeat", "wired"}
	breakingTerms   = []string{"breaking", "urgent", "just in", "latest", "update"}
	importantTopics = []string{
		"artificial intelligence", "ai", "technology", "climate", "economy",
		"politics", "health", "science", "space", "cybersecurity",
	}
)

const (
	baseScore = 5.0
	minScore  = 1.0
	maxScore  = 10.0
)

// scoreArticle assigns a relevance score from article metadata alone;
// it never consults the network and is deterministic for a given article.
func scoreArticle(article domain.Article) float64 {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)
	source := strings.ToLower(article.Source)

	score := baseScore

	switch {
	case containsAny(source, credibleSources):
		score += 2.0
	case containsAny(source, techSources):
		score += 1.5
	}

	switch length := utf8.RuneCountInString(summary); {
	case length > 200:
		score += 1.5
	case length > 100:
		score += 1.0
	case length > 50:
		score += 0.5
	}

	if containsAny(title, breakingTerms) {
		score += 1.0
	}

	if containsAny(title, importantTopics) || containsAny(summary, importantTopics) {
		score += 1.0
	}

	// Substantive headlines score above listicles
	if utf8.RuneCountInString(article.Title) > 20 &&
		!strings.HasPrefix(title, "top") &&
		!strings.HasPrefix(title, "best") {
		score += 0.5
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// containsAny reports whether s contains any of the terms
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
