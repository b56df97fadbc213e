package radix

import (
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type page struct {
	key uint64
	gen int64
}

// pageFactory creates pages and counts creations and releases.
type pageFactory struct {
	gen      atomic.Int64
	released atomic.Int64
}

func (f *pageFactory) create(key uint64) (*page, error) {
	return &page{key: key, gen: f.gen.Add(1)}, nil
}

func (f *pageFactory) release(*page) {
	f.released.Add(1)
}

func newTestTree(t testing.TB, mode Mode, bits, radix int, opts ...Option[page]) Tree[uint64, page] {
	t.Helper()

	tree, err := New[uint64, page](mode, bits, radix, opts...)
	require.NoError(t, err)
	require.NotNil(t, tree)

	return tree
}

// fakeKeys returns total distinct keys of at most bits significant bits.
func fakeKeys(total, bits int) []uint64 {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		seen  = make(map[uint64]bool, total)
		keys  = make([]uint64, 0, total)
		mask  = ^uint64(0)
	)

	if bits < 64 {
		mask = uint64(1)<<bits - 1
	}

	for len(keys) < total {
		key := faker.Uint64() & mask
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	return keys
}
