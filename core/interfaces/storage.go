// ABOUTME: ArticleStore interface defines the contract for durable article storage
// ABOUTME: Abstracts the archive database behind save/close operations

package interfaces

import (
	"context"

	"newsbrief/core/domain"
)

// ArticleStore persists articles to a durable archive
type ArticleStore interface {
	// Save inserts a single article into the archive
	Save(ctx context.Context, article domain.Article) error

	// Close releases the underlying connection
	Close(ctx context.Context) error
}
