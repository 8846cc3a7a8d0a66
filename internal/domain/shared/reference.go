package shared

import "context"

// Reference is a handle to an entity that has not been loaded yet. Its key is
// available without touching the store; Resolve loads the entity and fails
// with a not found error when the key does not exist.
type Reference[K comparable, T any] struct {
	key  K
	load func(ctx context.Context, key K) (T, error)
}

// NewReference builds a reference resolved through load.
func NewReference[K comparable, T any](key K, load func(ctx context.Context, key K) (T, error)) Reference[K, T] {
	return Reference[K, T]{key: key, load: load}
}

// Key returns the referenced identifier.
func (r Reference[K, T]) Key() K {
	return r.key
}

// Resolve loads the referenced entity.
func (r Reference[K, T]) Resolve(ctx context.Context) (T, error) {
	return r.load(ctx, r.key)
}
