// Package slot tracks which slots of a radix tree node are occupied.
//
// A Bitmap holds one bit per slot, packed into 64-bit words. Bits are only
// ever set while a tree is live, so concurrent Set and Has calls need no
// locking: every word is accessed atomically.
package slot

import (
	"math/bits"
	"sync/atomic"

	"github.com/hideo55/go-popcount"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

type Bitmap []atomic.Uint64

// New returns a bitmap big enough for n slots.
func New(n int) Bitmap {
	return make(Bitmap, (n+wordMask)>>wordShift)
}

// Fits reports whether the bitmap can address n slots without reallocation.
func (b Bitmap) Fits(n int) bool {
	return len(b) == (n+wordMask)>>wordShift
}

// Set marks slot i as occupied. It returns false if the bit was already set.
func (b Bitmap) Set(i int) bool {
	mask := uint64(1) << (i & wordMask)
	old := b[i>>wordShift].Or(mask)
	return old&mask == 0
}

func (b Bitmap) Has(i int) bool {
	return (b[i>>wordShift].Load()>>(i&wordMask))&0x01 != 0
}

// Count returns the number of occupied slots.
func (b Bitmap) Count() int {
	var cnt uint64

	for w := range b {
		cnt += popcount.Count(b[w].Load())
	}

	return int(cnt)
}

// Each calls fn for every occupied slot in ascending order.
func (b Bitmap) Each(fn func(i int)) {
	for w := range b {
		word := b[w].Load()

		for word != 0 {
			idx := bits.TrailingZeros64(word)
			fn(w<<wordShift | idx)
			word &= word - 1 // drop the lowest bit
		}
	}
}

// Reset clears every bit. It must not race with Set.
func (b Bitmap) Reset() {
	for w := range b {
		b[w].Store(0)
	}
}
