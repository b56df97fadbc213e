package radix

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode selects the concurrency strategy of a tree.
type Mode int

const (
	ModeLevelLocked Mode = iota
	ModeLockFree
	ModeSubtreeLocked
)

var modeNames = [...]string{
	ModeLevelLocked:   "lock_level",
	ModeLockFree:      "lockless",
	ModeSubtreeLocked: "lock_subtree",
}

// Modes lists every strategy.
var Modes = []Mode{ModeLevelLocked, ModeLockFree, ModeSubtreeLocked}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode is the inverse of Mode.String.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, errors.Errorf("radix: unknown mode %q", name)
}

// New creates a tree for keys of the given width using the chosen strategy.
func New[K Key, V any](mode Mode, bits, radix int, opts ...Option[V]) (Tree[K, V], error) {
	switch mode {
	case ModeLevelLocked:
		t, err := NewLevelLocked[K, V](bits, radix, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case ModeLockFree:
		t, err := NewLockFree[K, V](bits, radix, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case ModeSubtreeLocked:
		t, err := NewSubtreeLocked[K, V](bits, radix, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, errors.Errorf("radix: unknown mode %v", mode)
}
