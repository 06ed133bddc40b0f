// ABOUTME: Pacer interface defines the contract for spacing out sequential work
// ABOUTME: Abstracts delay policy so services stay testable without real sleeps

package interfaces

import "context"

// Pacer inserts a pause between consecutive operations. Pause blocks
// until the next operation may proceed, or returns early with the
// context's error when the context is cancelled.
type Pacer interface {
	Pause(ctx context.Context) error
}
