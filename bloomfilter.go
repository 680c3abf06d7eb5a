package bloomfilter

import (
	"fmt"

	"go.uber.org/zap"
)

// Filter is a Bloom filter over values of type V. Contains never reports
// false for a value added since the last Clear; it may report true for a
// value never added.
//
// A Filter is not safe for concurrent use. Add must not run concurrently with
// any other method; Contains calls may run concurrently with each other.
type Filter[V any] struct {
	store       *BitStore
	strategy    Strategy[V]
	objectCount uint64
	logger      *zap.Logger
}

// New creates an empty filter whose store is sized by the strategy.
func New[V any](s Strategy[V], opts ...Option) *Filter[V] {
	o := applyOptions(opts)
	f := &Filter[V]{
		store:    NewBitStore(s.StoreBits()),
		strategy: s,
		logger:   o.logger,
	}
	f.logger.Debug("bloom filter created",
		zap.String("strategy", fmt.Sprintf("%T", s)),
		zap.Uint("m", s.StoreBits()),
		zap.Uint("k", s.HashCount()),
	)
	return f
}

// NewMasked creates a filter of m bits and k hash functions using the masked
// hash strategy. The function returns an error wrapping ErrConfiguration if
// m or k is zero.
func NewMasked[V any](m, k uint, enc Encoder[V], opts ...Option) (*Filter[V], error) {
	s, err := NewMaskedHash(m, k, enc, opts...)
	if err != nil {
		return nil, err
	}
	return New[V](s, opts...), nil
}

// NewDefault creates a masked hash filter with DefaultStoreBits bits and
// DefaultHashCount hash functions.
func NewDefault[V any](enc Encoder[V], opts ...Option) (*Filter[V], error) {
	return NewMasked(DefaultStoreBits, DefaultHashCount, enc, opts...)
}

// NewDigest creates a filter using the digest segment strategy, with k
// segments of segmentBytes bytes and a store of 2^(8*segmentBytes) bits.
func NewDigest[V ~string | ~[]byte](segmentBytes, k uint, opts ...Option) (*Filter[V], error) {
	s, err := NewDigestSegment[V](segmentBytes, k, opts...)
	if err != nil {
		return nil, err
	}
	return New[V](s, opts...), nil
}

// Add inserts v.
func (f *Filter[V]) Add(v V) {
	for _, i := range f.strategy.Indices(v) {
		f.store.Set(i)
	}
	f.objectCount++
}

// Contains tells you whether v is likely part of the set.
func (f *Filter[V]) Contains(v V) bool {
	for _, i := range f.strategy.Indices(v) {
		if !f.store.Test(i) {
			return false
		}
	}
	return true
}

// Clear empties the filter.
func (f *Filter[V]) Clear() {
	f.logger.Debug("bloom filter cleared", zap.Uint64("objects", f.objectCount))
	f.store.ClearAll()
	f.objectCount = 0
}

// ObjectCount returns the number of Add calls since creation or the last
// Clear. Values added twice are counted twice.
func (f *Filter[V]) ObjectCount() uint64 {
	return f.objectCount
}

// Empty reports whether nothing was added since creation or the last Clear.
func (f *Filter[V]) Empty() bool {
	return f.objectCount == 0
}

// HashCount returns k, the number of bits set per value.
func (f *Filter[V]) HashCount() uint {
	return f.strategy.HashCount()
}

// StoreBits returns m, the size of the bit store.
func (f *Filter[V]) StoreBits() uint {
	return f.store.Len()
}
