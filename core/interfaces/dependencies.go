// ABOUTME: Dependencies struct holds all external dependencies for services
// ABOUTME: Used for dependency injection throughout the application

package interfaces

// Dependencies holds all external dependencies required by services
type Dependencies struct {
	// Cache provides caching functionality; may be nil when caching is disabled
	Cache Cache

	// HTTPClient provides HTTP operations
	HTTPClient HTTPClient

	// Logger provides logging functionality
	Logger Logger
}
