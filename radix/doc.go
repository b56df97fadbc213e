// Package radix implements a sparse, fixed-height radix tree mapping unsigned
// integer keys to lazily created leaves.
//
// A tree is built for keys of at most Bits significant bits. Every level
// consumes Radix bits of the key, the root taking the most significant ones,
// so a tree has Height = ceil(Bits/Radix) levels and every node has
// Slots = 2^Radix entries. Nodes are allocated on first need only.
//
// Slots are write-once: FindOrCreate fills empty slots and never overwrites
// an occupied one. Three interchangeable strategies make concurrent
// FindOrCreate calls safe:
//
//   - LevelLocked: one mutex per tree depth, held only for the
//     read-check-install of a single slot.
//   - LockFree: no locks; candidates are built speculatively and installed
//     with compare-and-swap, losers are discarded.
//   - SubtreeLocked: one mutex per top-level subtree, held for the whole
//     descent of a FindOrCreate; Find takes no lock. It also owns Delete,
//     the exclusive teardown of the whole tree.
//
// Example:
//
//	tree, err := radix.New[uint32, Page](radix.ModeLockFree, 32, 8)
//	if err != nil {
//		return err
//	}
//
//	page, err := tree.FindOrCreate(key, func(key uint32) (*Page, error) {
//		return &Page{Addr: key}, nil
//	})
package radix
