package radix

import "sync/atomic"

// LockFree installs nodes and leaves with compare-and-swap and never blocks.
// Candidates are built before claiming a slot; a thread losing the race
// discards its candidate and continues with the winner's value. The
// creation function may therefore run more than once for the same key.
type LockFree[K Key, V any] struct {
	*tree[K, V]
}

// NewLockFree creates a tree using lock-free installation.
func NewLockFree[K Key, V any](bits, radix int, opts ...Option[V]) (*LockFree[K, V], error) {
	t, err := newTree[K, V](ModeLockFree, bits, radix, opts)
	if err != nil {
		return nil, err
	}

	return &LockFree[K, V]{tree: t}, nil
}

func (t *LockFree[K, V]) Find(key K) (*V, bool) {
	return t.lookup(key)
}

func (t *LockFree[K, V]) FindOrCreate(key K, create CreateFunc[K, V]) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}

	var (
		k    = uint64(key)
		last = t.shape.leafDepth()
		cur  = t.root
	)

	for depth := 0; depth < last; depth++ {
		var (
			i     = t.shape.Index(k, depth)
			child = depth + 1
		)

		next, won, _ := claim(&cur.children[i],
			func() (*node[V], error) {
				return t.newNode(child), nil
			},
			func(n *node[V]) {
				t.counts.retries.Add(1)
				t.cfg.pool.put(n)
				t.log.Debug("node install lost", "key", k, "depth", child)
			},
		)
		if won {
			cur.used.Set(i)
			t.counts.nodes.Add(1)
		}
		cur = next
	}

	i := t.shape.Index(k, last)

	leaf, won, err := claim(&cur.leaves[i],
		func() (*V, error) {
			return t.create(key, create)
		},
		func(leaf *V) {
			t.counts.retries.Add(1)
			t.counts.discarded.Add(1)
			t.cfg.release(leaf)
			t.log.Debug("leaf install lost", "key", k, "depth", last)
		},
	)
	if err != nil {
		return nil, err
	}
	if won {
		cur.used.Set(i)
		t.counts.leaves.Add(1)
	}

	return leaf, nil
}

// claim returns the value held by p, installing a candidate from build
// first if p is empty. A candidate losing the compare-and-swap is handed to
// discard and p is read again. won reports whether the candidate was
// installed.
func claim[T any](p *atomic.Pointer[T], build func() (*T, error), discard func(*T)) (*T, bool, error) {
	for {
		if v := p.Load(); v != nil {
			return v, false, nil
		}

		c, err := build()
		if err != nil {
			return nil, false, err
		}

		if p.CompareAndSwap(nil, c) {
			return c, true, nil
		}

		discard(c)
	}
}
