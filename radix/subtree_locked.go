package radix

import "sync"

// SubtreeLocked serializes installs with one mutex per top-level subtree,
// i.e. per root slot. FindOrCreate holds its subtree's mutex for the whole
// descent, leaf creation included. Find takes no lock: slots are only ever
// filled, never changed, so a reader racing with a writer sees either an
// empty slot or its final value.
type SubtreeLocked[K Key, V any] struct {
	*tree[K, V]
	locks []sync.Mutex
}

// Released counts what Delete gave back.
type Released struct {
	Nodes  int64
	Leaves int64
}

// NewSubtreeLocked creates a tree using per-subtree locking.
func NewSubtreeLocked[K Key, V any](bits, radix int, opts ...Option[V]) (*SubtreeLocked[K, V], error) {
	t, err := newTree[K, V](ModeSubtreeLocked, bits, radix, opts)
	if err != nil {
		return nil, err
	}

	return &SubtreeLocked[K, V]{
		tree:  t,
		locks: make([]sync.Mutex, t.shape.Slots),
	}, nil
}

func (t *SubtreeLocked[K, V]) Find(key K) (*V, bool) {
	return t.lookup(key)
}

func (t *SubtreeLocked[K, V]) FindOrCreate(key K, create CreateFunc[K, V]) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}

	var (
		k       = uint64(key)
		last    = t.shape.leafDepth()
		cur     = t.root
		subtree = t.shape.Index(k, 0)
	)

	t.locks[subtree].Lock()
	defer t.locks[subtree].Unlock()

	for depth := 0; depth < last; depth++ {
		i := t.shape.Index(k, depth)

		next := cur.children[i].Load()
		if next == nil {
			next = t.newNode(depth + 1)
			t.setChild(cur, i, next)
		}
		cur = next
	}

	i := t.shape.Index(k, last)

	if leaf := cur.leaves[i].Load(); leaf != nil {
		return leaf, nil
	}

	leaf, err := t.create(key, create)
	if err != nil {
		return nil, err
	}
	t.setLeaf(cur, i, leaf)

	return leaf, nil
}

// Delete releases every node and leaf reachable from the root, children
// before their parents, and drops the subtree locks. Every leaf is passed
// to the release hook exactly once. The tree is unusable afterwards.
//
// Delete must not run concurrently with any other call on the tree.
func (t *SubtreeLocked[K, V]) Delete() Released {
	var rel Released

	if t.root == nil {
		return rel
	}

	t.deleteNode(t.root, &rel)

	t.root = nil
	t.locks = nil
	t.counts.nodes.Store(0)
	t.counts.leaves.Store(0)

	t.log.Info("radix tree deleted",
		"nodes", rel.Nodes,
		"leaves", rel.Leaves,
	)

	return rel
}

func (t *SubtreeLocked[K, V]) deleteNode(n *node[V], rel *Released) {
	if n.isLeaf() {
		n.used.Each(func(i int) {
			t.cfg.release(n.leaves[i].Load())
			rel.Leaves++
		})
	} else {
		n.used.Each(func(i int) {
			t.deleteNode(n.children[i].Load(), rel)
		})
	}

	t.cfg.pool.put(n)
	rel.Nodes++
}
