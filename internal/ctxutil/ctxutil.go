// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done (Canceled or DeadlineExceeded), nil
// otherwise. Used at the entry of every suspendable operation so a canceled
// run stops before touching the repository.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
