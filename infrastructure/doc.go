// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, AI summarization, and the
// article archive.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on logrus
// - ai/gemini: Gemini API client for article summarization
// - storage/mongo: MongoDB article archive
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, 3)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info", os.Stdout)
//	logger.Info("Fetched feed", map[string]interface{}{
//	    "url":   "https://example.com/rss",
//	    "count": 12,
//	})
package infrastructure
