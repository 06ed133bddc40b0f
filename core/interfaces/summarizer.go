// ABOUTME: Summarizer interface defines the contract for text summarization backends
// ABOUTME: Abstracts the generative AI provider behind a single-method contract

package interfaces

import "context"

// Summarizer produces a concise summary of the given article text.
// Implementations perform a single attempt; retry policy belongs to callers.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
