// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the pipeline, AI, cache, and output settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFeedURLs seeds the pipeline when NEWSBRIEF_FEEDS is unset.
var DefaultFeedURLs = []string{
	"https://feeds.bbci.co.uk/news/rss.xml",
	"https://rss.cnn.com/rss/edition.rss",
	"https://feeds.npr.org/1001/rss.xml",
	"https://www.theguardian.com/world/rss",
	"https://techcrunch.com/feed/",
}

// Config holds all application configuration
type Config struct {
	// Pipeline contains fetch and processing configuration
	Pipeline PipelineConfig

	// AI contains generative AI configuration
	AI AIConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Output contains report and log file configuration
	Output OutputConfig

	// Reader contains full-text extraction configuration
	Reader ReaderConfig
}

// PipelineConfig holds feed fetching and processing configuration
type PipelineConfig struct {
	// FeedURLs are the RSS/Atom feeds to fetch, in order
	FeedURLs []string

	// SiteURLs are plain website URLs to resolve to feeds before fetching
	SiteURLs []string

	// FetchTimeout is the per-request HTTP timeout in seconds
	FetchTimeout int

	// FetchRetries is the number of HTTP attempts per feed
	FetchRetries int

	// FeedDelay is the pause between consecutive feed fetches in seconds
	FeedDelay int

	// SummaryDelay is the pause between consecutive AI calls in seconds
	SummaryDelay int

	// PacerType selects the delay policy (fixed/token/none)
	PacerType string

	// MaxEntriesPerFeed bounds how many entries are taken from each feed
	MaxEntriesPerFeed int

	// MaxArticles bounds how many articles are processed in one run
	MaxArticles int

	// SummaryMaxLen caps summary length in runes, truncation marker included
	SummaryMaxLen int
}

// AIConfig holds generative AI configuration
type AIConfig struct {
	// APIKey authenticates against the Gemini API; empty disables summarization
	APIKey string

	// Model is the Gemini model identifier
	Model string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is the feed cache lifetime in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// OutputConfig holds report and log file configuration
type OutputConfig struct {
	// Path is the newsletter file location
	Path string

	// Format selects the report renderer (text/markdown)
	Format string

	// LogFile is the log file location; empty logs to stdout only
	LogFile string

	// LogLevel sets the minimum severity (debug/info/warn/error)
	LogLevel string
}

// ReaderConfig holds full-text extraction configuration
type ReaderConfig struct {
	// MinSummaryLen is the summary length below which extraction kicks in
	MinSummaryLen int

	// MaxContentLen caps extracted text length in runes
	MaxContentLen int

	// Timeout is the per-page extraction timeout in seconds
	Timeout int
}

// MongoConfig holds archive database configuration
type MongoConfig struct {
	// URI is the connection string
	URI string

	// Database is the database name
	Database string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Pipeline: PipelineConfig{
			FeedURLs:          getEnvAsListOrDefault("NEWSBRIEF_FEEDS", DefaultFeedURLs),
			SiteURLs:          getEnvAsListOrDefault("NEWSBRIEF_SITES", nil),
			FetchTimeout:      getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
			FetchRetries:      getEnvAsIntOrDefault("FETCH_RETRIES", 1),
			FeedDelay:         getEnvAsIntOrDefault("FEED_DELAY", 1),
			SummaryDelay:      getEnvAsIntOrDefault("SUMMARY_DELAY", 6),
			PacerType:         getEnvOrDefault("PACER_TYPE", "fixed"),
			MaxEntriesPerFeed: getEnvAsIntOrDefault("MAX_ENTRIES_PER_FEED", 10),
			MaxArticles:       getEnvAsIntOrDefault("MAX_ARTICLES", 50),
			SummaryMaxLen:     getEnvAsIntOrDefault("SUMMARY_MAX_LEN", 500),
		},
		AI: AIConfig{
			APIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash-preview-05-20"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "none"),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 3600),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "newsbrief_cache.db"),
			},
		},
		Output: OutputConfig{
			Path:     getEnvOrDefault("OUTPUT_FILE", "newsletter_articles.txt"),
			Format:   getEnvOrDefault("OUTPUT_FORMAT", "text"),
			LogFile:  getEnvOrDefault("LOG_FILE", "newsletter_generator.log"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Reader: ReaderConfig{
			MinSummaryLen: getEnvAsIntOrDefault("READER_MIN_SUMMARY_LEN", 160),
			MaxContentLen: getEnvAsIntOrDefault("READER_MAX_CONTENT_LEN", 4000),
			Timeout:       getEnvAsIntOrDefault("READER_TIMEOUT", 30),
		},
	}

	return cfg, nil
}

// LoadMongoFromEnv loads archive database configuration from environment variables
func LoadMongoFromEnv() (*MongoConfig, error) {
	cfg := &MongoConfig{
		URI:      getEnvOrDefault("MONGO_URI", ""),
		Database: getEnvOrDefault("MONGO_DB_NAME", "news_database"),
	}

	if cfg.URI == "" {
		return nil, errors.New("MONGO_URI must be set")
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns the environment variable as a comma-separated
// list or a copy of the default; blank elements are dropped.
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Pipeline.FeedURLs) == 0 && len(c.Pipeline.SiteURLs) == 0 {
		return errors.New("at least one feed or site URL must be configured")
	}

	if c.Pipeline.FetchTimeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Pipeline.FetchRetries < 1 {
		return errors.New("fetch retries must be at least 1")
	}

	if c.Pipeline.MaxEntriesPerFeed < 1 {
		return errors.New("max entries per feed must be at least 1")
	}

	if c.Pipeline.MaxArticles < 1 {
		return errors.New("max articles must be at least 1")
	}

	if c.Pipeline.SummaryMaxLen < 10 {
		return errors.New("summary max length must be at least 10")
	}

	switch c.Pipeline.PacerType {
	case "fixed", "token", "none":
	default:
		return fmt.Errorf("pacer type must be 'fixed', 'token', or 'none', got %q", c.Pipeline.PacerType)
	}

	switch c.Cache.Type {
	case "none", "memory", "redis", "sqlite":
	default:
		return fmt.Errorf("cache type must be 'none', 'memory', 'redis', or 'sqlite', got %q", c.Cache.Type)
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Output.Path == "" {
		return errors.New("output file path cannot be empty")
	}

	switch c.Output.Format {
	case "text", "markdown":
	default:
		return fmt.Errorf("output format must be 'text' or 'markdown', got %q", c.Output.Format)
	}

	return nil
}
