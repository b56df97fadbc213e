package radix

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Key is any unsigned integer type.
type Key interface {
	constraints.Unsigned
}

// Tree is the capability set shared by all strategies.
type Tree[K Key, V any] interface {
	// Find returns the leaf installed for key. It never installs anything.
	Find(key K) (*V, bool)
	// FindOrCreate returns the leaf installed for key, creating and
	// installing it and any missing node on its path first.
	FindOrCreate(key K, create CreateFunc[K, V]) (*V, error)
	Shape() Shape
	Mode() Mode
	Stats() Stats
}

// Stats is a snapshot of a tree's counters.
type Stats struct {
	Nodes     int64 // live nodes including the root
	Leaves    int64 // installed leaves
	Creates   int64 // creation function calls
	Discarded int64 // leaf candidates dropped after a lost install race
	Retries   int64 // lost install races, nodes and leaves
	Subtrees  int   // occupied root slots
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d creates=%d discarded=%d retries=%d subtrees=%d",
		s.Nodes, s.Leaves, s.Creates, s.Discarded, s.Retries, s.Subtrees)
}

type counters struct {
	nodes     atomic.Int64
	leaves    atomic.Int64
	creates   atomic.Int64
	discarded atomic.Int64
	retries   atomic.Int64
}

// tree holds what every strategy shares: the shape, the root and the
// plumbing for allocating nodes and leaves.
type tree[K Key, V any] struct {
	shape  Shape
	mode   Mode
	root   *node[V]
	cfg    config[V]
	log    *slog.Logger
	counts counters
}

func newTree[K Key, V any](mode Mode, bits, radix int, opts []Option[V]) (*tree[K, V], error) {
	cfg := newConfig(opts)

	shape, err := NewShape(bits, radix)
	if err != nil {
		cfg.logger.Error("radix tree not created",
			"mode", mode.String(),
			"bits", bits,
			"radix", radix,
			"error", err,
		)
		return nil, err
	}

	t := &tree[K, V]{
		shape: shape,
		mode:  mode,
		cfg:   cfg,
		log:   cfg.logger.With("mode", mode.String()),
	}
	t.root = t.newNode(0)
	t.counts.nodes.Store(1)

	t.log.Debug("radix tree created",
		"bits", shape.Bits,
		"radix", shape.Radix,
		"height", shape.Height,
		"slots", shape.Slots,
	)

	return t, nil
}

func (t *tree[K, V]) Shape() Shape {
	return t.shape
}

func (t *tree[K, V]) Mode() Mode {
	return t.mode
}

func (t *tree[K, V]) Stats() Stats {
	s := Stats{
		Nodes:     t.counts.nodes.Load(),
		Leaves:    t.counts.leaves.Load(),
		Creates:   t.counts.creates.Load(),
		Discarded: t.counts.discarded.Load(),
		Retries:   t.counts.retries.Load(),
	}
	if t.root != nil {
		s.Subtrees = t.root.used.Count()
	}
	return s
}

// newNode allocates an empty node for the given depth.
func (t *tree[K, V]) newNode(depth int) *node[V] {
	return t.cfg.pool.get(t.shape.Slots, depth == t.shape.leafDepth())
}

// setChild fills the empty slot i of n with child.
func (t *tree[K, V]) setChild(n *node[V], i int, child *node[V]) {
	n.children[i].Store(child)
	n.used.Set(i)
	t.counts.nodes.Add(1)
}

func (t *tree[K, V]) setLeaf(n *node[V], i int, leaf *V) {
	n.leaves[i].Store(leaf)
	n.used.Set(i)
	t.counts.leaves.Add(1)
}

// create calls the creation function for key and checks its result.
func (t *tree[K, V]) create(key K, create CreateFunc[K, V]) (*V, error) {
	t.counts.creates.Add(1)

	leaf, err := create(key)
	if err == nil && leaf == nil {
		err = ErrNilLeaf
	}
	if err != nil {
		t.log.Warn("leaf not created",
			"key", uint64(key),
			"error", err,
		)
		return nil, errors.Wrapf(err, "radix: create leaf for key %#x", uint64(key))
	}

	return leaf, nil
}

// checkKey rejects keys that do not fit into the tree's width.
func (t *tree[K, V]) checkKey(key K) error {
	if t.root == nil {
		return ErrDeleted
	}
	if !t.shape.Contains(uint64(key)) {
		return errors.Wrapf(ErrKeyRange, "key %#x, bits %d", uint64(key), t.shape.Bits)
	}
	return nil
}

// lookup walks the path of key with atomic loads only.
func (t *tree[K, V]) lookup(key K) (*V, bool) {
	if t.checkKey(key) != nil {
		return nil, false
	}

	var (
		k    = uint64(key)
		last = t.shape.leafDepth()
		cur  = t.root
	)

	for depth := 0; depth < last; depth++ {
		if cur = cur.children[t.shape.Index(k, depth)].Load(); cur == nil {
			return nil, false // not found
		}
	}

	leaf := cur.leaves[t.shape.Index(k, last)].Load()

	return leaf, leaf != nil
}
