// ABOUTME: HTML utilities for reducing feed markup to plain text
// ABOUTME: Walks the parsed node tree so entities and nesting are handled properly

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes all markup from a fragment and returns the text
// content with whitespace collapsed. Script and style bodies are
// dropped. Plain text passes through with only whitespace cleanup.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseWhitespace(fragment)
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// Malformed beyond repair; better to keep the raw text than drop it
		return collapseWhitespace(fragment)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(sb.String())
}

// collapseWhitespace trims the string and folds runs of whitespace
// (including newlines and tabs) into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
