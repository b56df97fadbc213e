package radix

import (
	"sync/atomic"
	"testing"
)

const (
	benchBits  = 32
	benchRadix = 8
	benchKeys  = 1 << 14
)

func benchCreate(key uint64) (*page, error) {
	return &page{key: key}, nil
}

func BenchmarkFindOrCreate(b *testing.B) {
	keys := fakeKeys(benchKeys, benchBits)

	for _, mode := range Modes {
		b.Run(mode.String(), func(b *testing.B) {
			var (
				tree = newTestTree(b, mode, benchBits, benchRadix)
				next atomic.Uint64
			)

			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					i := next.Add(1) % benchKeys
					if _, err := tree.FindOrCreate(keys[i], benchCreate); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}

func BenchmarkFind(b *testing.B) {
	keys := fakeKeys(benchKeys, benchBits)

	for _, mode := range Modes {
		b.Run(mode.String(), func(b *testing.B) {
			var (
				tree = newTestTree(b, mode, benchBits, benchRadix)
				next atomic.Uint64
			)

			for _, key := range keys {
				if _, err := tree.FindOrCreate(key, benchCreate); err != nil {
					b.Fatal(err)
				}
			}

			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					i := next.Add(1) % benchKeys
					_, _ = tree.Find(keys[i])
				}
			})
		})
	}
}

func BenchmarkFindOrCreate_SameKey(b *testing.B) {
	for _, mode := range Modes {
		b.Run(mode.String(), func(b *testing.B) {
			tree := newTestTree(b, mode, benchBits, benchRadix)

			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := tree.FindOrCreate(0xCAFEBABE, benchCreate); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
