package bloomfilter

import (
	"fmt"

	"go.uber.org/zap"
)

// maxHashCount bounds k. The optimal k for a false-positive rate p is -log2(p).
const maxHashCount = 256

// MaskedHash derives k indices from a single 64-bit hash of the value, XORed
// with k random masks and reduced modulo the store size.
//
// It works for any value with an Encoder and costs one hash per lookup. The k
// indices are not independent: they are all functions of the same hash, so
// structure in the hash shows up in every index. This matters little when the
// store is large relative to k and the hash is good. With a power of two store
// size only the low bits of the hash are used, so prefer other sizes.
type MaskedHash[V any] struct {
	seed   uint64
	masks  []uint64
	m      uint64
	encode Encoder[V]
	hash   Hasher64
}

// NewMaskedHash creates a masked hash strategy for a store of m bits and k
// hash functions. The masks are drawn from the seed given by WithSeed, or
// from the current time.
func NewMaskedHash[V any](m, k uint, enc Encoder[V], opts ...Option) (*MaskedHash[V], error) {
	if k == 0 {
		return nil, fmt.Errorf("hash function count must be at least 1: %w", ErrConfiguration)
	}
	if k > maxHashCount {
		return nil, fmt.Errorf("hash function count %d exceeds %d: %w", k, maxHashCount, ErrConfiguration)
	}
	if m == 0 {
		return nil, fmt.Errorf("store size must be at least 1 bit: %w", ErrConfiguration)
	}
	if enc == nil {
		return nil, fmt.Errorf("missing value encoder: %w", ErrConfiguration)
	}
	o := applyOptions(opts)

	s := &MaskedHash[V]{
		seed:   o.seed,
		masks:  make([]uint64, k),
		m:      uint64(m),
		encode: enc,
		hash:   o.hasher,
	}
	rngcounter := s.seed
	for i := range s.masks {
		s.masks[i] = splitmix64(&rngcounter)
	}
	o.logger.Debug("masked hash seeded",
		zap.Uint64("seed", s.seed),
		zap.Uint("m", m),
		zap.Uint("k", k),
	)
	return s, nil
}

// Indices returns (H(v) ^ mask_i) mod m for every mask.
func (s *MaskedHash[V]) Indices(v V) []uint {
	h := s.hash(s.encode(v))
	out := make([]uint, len(s.masks))
	for i, mask := range s.masks {
		out[i] = uint((h ^ mask) % s.m)
	}
	return out
}

// Seed returns the seed the masks were drawn from.
func (s *MaskedHash[V]) Seed() uint64 {
	return s.seed
}

// Masks returns a copy of the masks.
func (s *MaskedHash[V]) Masks() []uint64 {
	return append([]uint64(nil), s.masks...)
}

func (s *MaskedHash[V]) HashCount() uint {
	return uint(len(s.masks))
}

func (s *MaskedHash[V]) StoreBits() uint {
	return uint(s.m)
}
