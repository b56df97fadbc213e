package radix

import "log/slog"

// CreateFunc builds the leaf for key. It may return an error, in which case
// nothing is installed for key.
type CreateFunc[K Key, V any] func(key K) (*V, error)

// ReleaseFunc is called for every leaf the tree drops: the losing candidate
// of a lock-free install race and, on Delete, every installed leaf.
type ReleaseFunc[V any] func(leaf *V)

type config[V any] struct {
	logger  *slog.Logger
	release ReleaseFunc[V]
	pool    *NodePool[V]
}

// Option configures a tree.
type Option[V any] func(*config[V])

// WithLogger sets the structured logger. Trees log nothing by default.
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(c *config[V]) {
		c.logger = logger
	}
}

// WithRelease sets the hook reclaiming leaves dropped by the tree.
func WithRelease[V any](release ReleaseFunc[V]) Option[V] {
	return func(c *config[V]) {
		c.release = release
	}
}

// WithNodePool makes the tree allocate its nodes from pool, which may be
// shared by several trees with the same leaf type.
func WithNodePool[V any](pool *NodePool[V]) Option[V] {
	return func(c *config[V]) {
		c.pool = pool
	}
}

func newConfig[V any](opts []Option[V]) config[V] {
	var c config[V]

	for _, opt := range opts {
		opt(&c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.release == nil {
		c.release = func(*V) {}
	}
	if c.pool == nil {
		c.pool = NewNodePool[V]()
	}

	return c
}
