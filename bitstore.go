package bloomfilter

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitStore is a fixed-length bit vector. Its length never changes after
// construction; addressing a bit outside [0, Len()) panics.
type BitStore struct {
	bits *bitset.BitSet
}

// NewBitStore returns a store of m clear bits.
func NewBitStore(m uint) *BitStore {
	return &BitStore{bits: bitset.New(m)}
}

// Set marks bit i.
func (s *BitStore) Set(i uint) {
	s.check(i)
	s.bits.Set(i)
}

// Test reports whether bit i is set.
func (s *BitStore) Test(i uint) bool {
	s.check(i)
	return s.bits.Test(i)
}

// ClearAll resets every bit.
func (s *BitStore) ClearAll() {
	s.bits.ClearAll()
}

// Len returns the number of bits in the store.
func (s *BitStore) Len() uint {
	return s.bits.Len()
}

// Count returns the number of set bits.
func (s *BitStore) Count() uint {
	return s.bits.Count()
}

// bitset grows on out of range writes, which would break the fixed size.
func (s *BitStore) check(i uint) {
	if i >= s.bits.Len() {
		panic(fmt.Sprintf("bloomfilter: bit index %d out of range [0, %d)", i, s.bits.Len()))
	}
}
