// ABOUTME: Newsletter rendering in text and markdown formats
// ABOUTME: Produces the labeled article blocks and score statistics header

package report

import (
	"fmt"
	"strings"
	"time"

	"newsbrief/core/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	headerRule  = strings.Repeat("=", 80)
	articleRule = strings.Repeat("-", 60)
)

// scoreStats aggregates the scores of ranked articles
type scoreStats struct {
	count    int
	highest  float64
	lowest   float64
	average  float64
	atLeast8 int
	atLeast6 int
}

// collectStats gathers statistics over articles with a positive score
func collectStats(articles []domain.Article) scoreStats {
	var stats scoreStats
	var sum float64

	for _, article := range articles {
		if article.Score <= 0 {
			continue
		}
		if stats.count == 0 || article.Score > stats.highest {
			stats.highest = article.Score
		}
		if stats.count == 0 || article.Score < stats.lowest {
			stats.lowest = article.Score
		}
		sum += article.Score
		stats.count++
		if article.Score >= 8 {
			stats.atLeast8++
		}
		if article.Score >= 6 {
			stats.atLeast6++
		}
	}

	if stats.count > 0 {
		stats.average = sum / float64(stats.count)
	}

	return stats
}

// Render produces the plain-text newsletter
func Render(articles []domain.Article, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Newsletter Articles - %s\n", generatedAt.Format(timestampLayout))
	b.WriteString(headerRule + "\n\n")

	stats := collectStats(articles)
	if stats.count > 0 {
		b.WriteString("📊 Score Statistics:\n")
		fmt.Fprintf(&b, "   Highest Score: %.1f/10\n", stats.highest)
		fmt.Fprintf(&b, "   Lowest Score: %.1f/10\n", stats.lowest)
		fmt.Fprintf(&b, "   Average Score: %.1f/10\n", stats.average)
		fmt.Fprintf(&b, "   Articles with score ≥8: %d\n", stats.atLeast8)
		fmt.Fprintf(&b, "   Articles with score ≥6: %d\n\n", stats.atLeast6)
		b.WriteString(headerRule + "\n\n")
	}

	for i, article := range articles {
		if article.Score > 0 {
			fmt.Fprintf(&b, "🏆 #%d (Score: %.1f/10)\n", i+1, article.Score)
		} else {
			fmt.Fprintf(&b, "%d.\n", i+1)
		}
		fmt.Fprintf(&b, "📰 %s\n", article.Title)
		fmt.Fprintf(&b, "📡 Source: %s\n", article.Source)
		fmt.Fprintf(&b, "🔗 Link: %s\n", article.Link)
		if article.HasAISummary() {
			fmt.Fprintf(&b, "🤖 AI Summary: %s\n", article.AISummary)
		} else if article.Summary != "" {
			fmt.Fprintf(&b, "📝 Summary: %s\n", article.Summary)
		}
		b.WriteString("\n" + articleRule + "\n\n")
	}

	return b.String()
}

// RenderMarkdown produces the markdown newsletter
func RenderMarkdown(articles []domain.Article, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Newsletter Articles\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(timestampLayout))

	stats := collectStats(articles)
	if stats.count > 0 {
		b.WriteString("## Score Statistics\n\n")
		fmt.Fprintf(&b, "- Highest Score: %.1f/10\n", stats.highest)
		fmt.Fprintf(&b, "- Lowest Score: %.1f/10\n", stats.lowest)
		fmt.Fprintf(&b, "- Average Score: %.1f/10\n", stats.average)
		fmt.Fprintf(&b, "- Articles with score ≥8: %d\n", stats.atLeast8)
		fmt.Fprintf(&b, "- Articles with score ≥6: %d\n\n", stats.atLeast6)
	}

	for i, article := range articles {
		if article.Score > 0 {
			fmt.Fprintf(&b, "## %d. %s (Score: %.1f/10)\n\n", i+1, article.Title, article.Score)
		} else {
			fmt.Fprintf(&b, "## %d. %s\n\n", i+1, article.Title)
		}
		fmt.Fprintf(&b, "- Source: %s\n", article.Source)
		fmt.Fprintf(&b, "- Link: %s\n\n", article.Link)
		if article.HasAISummary() {
			fmt.Fprintf(&b, "%s\n\n", article.AISummary)
		} else if article.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", article.Summary)
		}
	}

	return b.String()
}
