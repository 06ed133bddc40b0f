// Package core contains the business logic for the newsbrief newsletter
// generator. It is designed to be framework-agnostic and can be used
// independently of any delivery or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Article)
// - feed: Feed fetching and entry conversion service
// - processor: Deduplication, scoring, and AI summarization service
// - discovery: Feed URL discovery for plain website URLs
// - reader: Full-text extraction for articles with thin summaries
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, AI)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newsbrief/core/feed"
//	    "newsbrief/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	feedService := feed.NewService(deps, feed.Options{})
//
//	// Fetch feeds
//	articles := feedService.FetchAll(ctx, []string{
//	    "https://example.com/feed.rss",
//	})
package core
