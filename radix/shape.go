package radix

import "github.com/pkg/errors"

const (
	// MaxBits is the widest key a tree can index.
	MaxBits = 64
	// MaxRadix bounds the node size to 2^24 slots.
	MaxRadix = 24
)

// Shape fixes the geometry of a tree. It never changes after construction.
type Shape struct {
	Bits   int // significant key bits
	Radix  int // key bits consumed per level
	Height int // levels from root to leaf, ceil(Bits/Radix)
	Slots  int // entries per node, 2^Radix
}

// NewShape validates bits and radix and computes the tree geometry.
func NewShape(bits, radix int) (Shape, error) {
	if radix < 1 || radix > MaxRadix {
		return Shape{}, errors.Wrapf(ErrInvalidRadix, "radix=%d", radix)
	}
	if bits < 1 || bits > MaxBits {
		return Shape{}, errors.Wrapf(ErrInvalidBits, "bits=%d", bits)
	}

	return Shape{
		Bits:   bits,
		Radix:  radix,
		Height: (bits + radix - 1) / radix,
		Slots:  1 << radix,
	}, nil
}

// Contains reports whether key fits into Bits significant bits.
func (s Shape) Contains(key uint64) bool {
	return s.Bits >= MaxBits || key>>s.Bits == 0
}

// Index returns the slot index of key at the given depth (root = 0).
// The root consumes the most significant Radix bits, the last level the
// least significant ones.
func (s Shape) Index(key uint64, depth int) int {
	shift := uint(s.Height-1-depth) * uint(s.Radix)
	return int(key >> shift & uint64(s.Slots-1))
}

// Indices returns the slot index of key for every depth.
func (s Shape) Indices(key uint64) []int {
	idx := make([]int, s.Height)

	for depth := range idx {
		idx[depth] = s.Index(key, depth)
	}

	return idx
}

// leafDepth is the depth of nodes holding leaves.
func (s Shape) leafDepth() int {
	return s.Height - 1
}
