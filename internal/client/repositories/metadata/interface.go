// Package metadata is the client's persisted key-value store. It backs
// transient cross-screen state that must survive process restarts, such as
// the email address of an in-progress signup.
package metadata

import "context"

// Repository stores opaque values by key. Get returns nil (no error) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
