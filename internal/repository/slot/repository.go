package slot

import "context"

// Repository is a persistent key-value slot, the durable home for the
// cart and wishlist blobs. Get returns domain.ErrNotFound for absent keys.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
