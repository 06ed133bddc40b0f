// ABOUTME: Standalone utility that inserts a sample article into the MongoDB archive
// ABOUTME: Verifies connectivity, the unique url index, and the document schema

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newsbrief/core/domain"
	"newsbrief/core/interfaces"
	logruslogger "newsbrief/infrastructure/logger/logrus"
	mongostore "newsbrief/infrastructure/storage/mongo"
	"newsbrief/pkg/config"
)

const runTimeout = 10 * time.Second

func main() {
	// .env is optional; the real environment wins
	_ = godotenv.Load()

	cfg, err := config.LoadMongoFromEnv()
	if err != nil {
		log.Fatalf("Failed to load archive configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger("info", os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	store, err := mongostore.NewStore(ctx, *cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to archive: %v", err)
	}

	archiveErr := archive(ctx, store, logger)

	if err := store.Close(ctx); err != nil {
		logger.Warn("Failed to close archive connection", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if archiveErr != nil {
		os.Exit(1)
	}
}

// archive inserts one sample article through the store contract
func archive(ctx context.Context, store interfaces.ArticleStore, logger interfaces.Logger) error {
	article := domain.Article{
		Title:      "Sample News Article",
		Link:       "https://example.com/sample-news-article",
		Summary:    "This is a summary of the sample news article.",
		Source:     "Example News",
		Author:     "John Doe",
		Categories: []string{"sample", "news", "example"},
		Published:  time.Now(),
	}

	if err := store.Save(ctx, article); err != nil {
		logger.Error("Failed to archive article", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Article archived successfully", map[string]interface{}{
		"url": article.Link,
	})
	return nil
}
