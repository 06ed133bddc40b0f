// ABOUTME: Main entry point for the newsbrief newsletter generator
// ABOUTME: Wires together all components and runs the batch pipeline

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newsbrief/core/discovery"
	"newsbrief/core/feed"
	"newsbrief/core/interfaces"
	"newsbrief/core/processor"
	"newsbrief/core/reader"
	"newsbrief/infrastructure/ai/gemini"
	"newsbrief/infrastructure/cache/memory"
	"newsbrief/infrastructure/cache/redis"
	"newsbrief/infrastructure/cache/sqlite"
	stdhttp "newsbrief/infrastructure/http/standard"
	logruslogger "newsbrief/infrastructure/logger/logrus"
	"newsbrief/pkg/config"
	"newsbrief/pkg/featureflags"
	"newsbrief/pkg/pacing"
	"newsbrief/report"
)

func main() {
	// .env is optional; the real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger writing to stdout and the configured log file
	logOut, closeLog := openLogOutput(cfg.Output.LogFile)
	defer closeLog()

	logger := logruslogger.NewLogrusLogger(cfg.Output.LogLevel, logOut)
	logger.Info("Starting newsletter generation", map[string]interface{}{
		"feeds":      len(cfg.Pipeline.FeedURLs),
		"sites":      len(cfg.Pipeline.SiteURLs),
		"cache_type": cfg.Cache.Type,
		"output":     cfg.Output.Path,
	})

	// Interrupts cancel the pipeline between operations
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.Pipeline.FetchTimeout)*time.Second,
		cfg.Pipeline.FetchRetries,
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      buildCache(cfg, logger),
		HTTPClient: httpClient,
		Logger:     logger,
	}

	flags := featureflags.NewEnvManager("")

	// Resolve plain site URLs to their feeds
	feedURLs := cfg.Pipeline.FeedURLs
	if len(cfg.Pipeline.SiteURLs) > 0 {
		var resolver interfaces.SiteResolver = discovery.NewService(deps)
		feedURLs = append(feedURLs, resolver.Resolve(ctx, cfg.Pipeline.SiteURLs)...)
	}

	// Fetch feeds
	var fetcher interfaces.FeedFetcher = feed.NewService(deps, feed.Options{
		MaxEntriesPerFeed: cfg.Pipeline.MaxEntriesPerFeed,
		SummaryMaxLen:     cfg.Pipeline.SummaryMaxLen,
		CacheTTL:          time.Duration(cfg.Cache.TTL) * time.Second,
		Pacer:             buildPacer(cfg.Pipeline.PacerType, time.Duration(cfg.Pipeline.FeedDelay)*time.Second),
	})

	articles := fetcher.FetchAll(ctx, feedURLs)
	if len(articles) == 0 {
		logger.Warn("No articles fetched, nothing to write", nil)
		return
	}

	// Pull full article text for thin summaries when enabled
	if flags.IsEnabled(ctx, featureflags.ReaderMode) {
		var enricher interfaces.ContentEnricher = reader.NewService(deps, reader.Options{
			MinSummaryLen: cfg.Reader.MinSummaryLen,
			MaxContentLen: cfg.Reader.MaxContentLen,
			Timeout:       time.Duration(cfg.Reader.Timeout) * time.Second,
		})
		articles = enricher.EnrichAll(ctx, articles)
	}

	// Deduplicate, score, and summarize
	processorService := buildProcessor(cfg, deps)
	processed := processorService.Process(ctx, articles)

	logger.Info("Processing complete", map[string]interface{}{
		"fetched":   len(articles),
		"processed": len(processed),
	})

	// An interrupt before the first record completes leaves nothing to write
	if len(processed) == 0 {
		logger.Warn("No articles survived processing, nothing to write", nil)
		return
	}

	if flags.IsEnabled(ctx, featureflags.RankByScore) && processorService.Summarizing() {
		processed = processor.RankByScore(processed)
		logger.Info("Articles ranked by score", nil)
	}

	// Render and write the newsletter
	var content string
	switch cfg.Output.Format {
	case "markdown":
		content = report.RenderMarkdown(processed, time.Now())
	default:
		content = report.Render(processed, time.Now())
	}

	if err := report.WriteFile(cfg.Output.Path, content); err != nil {
		logger.Error("Failed to write newsletter", map[string]interface{}{
			"path":  cfg.Output.Path,
			"error": err.Error(),
		})
		closeLog()
		os.Exit(1)
	}

	logger.Info("Newsletter written", map[string]interface{}{
		"path":     cfg.Output.Path,
		"articles": len(processed),
	})
}

// openLogOutput mirrors log lines to stdout and, when a path is
// configured, to an append-only log file. An unopenable log file falls
// back to stdout-only logging.
func openLogOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Failed to open log file %s, logging to stdout only: %v", path, err)
		return os.Stdout, func() {}
	}

	return io.MultiWriter(os.Stdout, f), func() { f.Close() }
}

// buildCache creates the configured cache backend. Backend failures fall
// back to the in-memory cache; type "none" disables caching.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	case "memory":
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	default:
		return nil
	}
}

// buildPacer returns the delay policy for the given type and interval
func buildPacer(pacerType string, delay time.Duration) interfaces.Pacer {
	switch pacerType {
	case "token":
		return pacing.NewTokenBucket(delay, 1)
	case "none":
		return pacing.NewNone()
	default:
		return pacing.NewFixedDelay(delay)
	}
}

// buildProcessor creates the article processor. A missing API key drops
// the run into degraded mode: deduplication without summaries.
func buildProcessor(cfg *config.Config, deps interfaces.Dependencies) interfaces.ArticleProcessor {
	opts := processor.Options{MaxArticles: cfg.Pipeline.MaxArticles}

	if cfg.AI.APIKey == "" {
		deps.Logger.Warn("GEMINI_API_KEY not set, skipping AI summarization", nil)
		return processor.NewDeduplicationOnly(deps, opts)
	}

	client, err := gemini.NewClient(deps, gemini.Config{
		APIKey: cfg.AI.APIKey,
		Model:  cfg.AI.Model,
	})
	if err != nil {
		deps.Logger.Warn("Failed to create Gemini client, skipping AI summarization", map[string]interface{}{
			"error": err.Error(),
		})
		return processor.NewDeduplicationOnly(deps, opts)
	}

	pacer := buildPacer(cfg.Pipeline.PacerType, time.Duration(cfg.Pipeline.SummaryDelay)*time.Second)
	return processor.NewWithSummarizer(deps, client, pacer, opts)
}

func init() {
	fmt.Println()
	fmt.Println("  newsbrief - RSS newsletter generator")
	fmt.Println("  " + strings.Repeat("=", 36))
}
