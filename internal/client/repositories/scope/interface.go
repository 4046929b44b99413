// Package scope implements the two persistence scopes of the client session:
// a durable one backed by a local SQLite database, surviving restarts, and
// an ephemeral in-memory one living only as long as the process. Both store
// the same small key/value set (token, serialized user record).
package scope

import "context"

// Repository is one persistence scope.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key in the scope.
	Clear(ctx context.Context) error
}
