package radix

import "sync"

// LevelLocked serializes installs with one mutex per tree depth, shared by
// every node at that depth. A depth's mutex is held only while one slot is
// read, checked and filled; it is released before descending further.
type LevelLocked[K Key, V any] struct {
	*tree[K, V]
	locks []sync.Mutex
}

// NewLevelLocked creates a tree using per-level locking.
func NewLevelLocked[K Key, V any](bits, radix int, opts ...Option[V]) (*LevelLocked[K, V], error) {
	t, err := newTree[K, V](ModeLevelLocked, bits, radix, opts)
	if err != nil {
		return nil, err
	}

	return &LevelLocked[K, V]{
		tree:  t,
		locks: make([]sync.Mutex, t.shape.Height),
	}, nil
}

func (t *LevelLocked[K, V]) Find(key K) (*V, bool) {
	leaf, err := t.findAlloc(key, nil)
	return leaf, err == nil && leaf != nil
}

func (t *LevelLocked[K, V]) FindOrCreate(key K, create CreateFunc[K, V]) (*V, error) {
	return t.findAlloc(key, create)
}

// findAlloc walks the path of key, filling empty slots when create is set.
// It returns a nil leaf and no error if key is missing and create is nil.
func (t *LevelLocked[K, V]) findAlloc(key K, create CreateFunc[K, V]) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}

	var (
		k    = uint64(key)
		last = t.shape.leafDepth()
		cur  = t.root
	)

	for depth := 0; depth < last; depth++ {
		i := t.shape.Index(k, depth)

		t.locks[depth].Lock()

		next := cur.children[i].Load()
		if next == nil && create != nil {
			next = t.newNode(depth + 1)
			t.setChild(cur, i, next)
		}

		t.locks[depth].Unlock()

		if next == nil {
			return nil, nil // not found
		}
		cur = next
	}

	i := t.shape.Index(k, last)

	t.locks[last].Lock()
	defer t.locks[last].Unlock()

	if leaf := cur.leaves[i].Load(); leaf != nil || create == nil {
		return leaf, nil
	}

	leaf, err := t.create(key, create)
	if err != nil {
		return nil, err
	}
	t.setLeaf(cur, i, leaf)

	return leaf, nil
}
