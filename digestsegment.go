package bloomfilter

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math/bits"
)

// maxSegmentBytes bounds the store at 2^32 bits (512 MiB).
const maxSegmentBytes = 4

// DigestSegment derives indices by cutting a cryptographic digest of the
// value into k consecutive big endian segments of b bytes. Each segment is an
// index, so the store holds exactly 2^(8*b) bits and no reduction is needed.
//
// The digest spreads its bits uniformly, which keeps the k indices close to
// independent. The price is that the store size is fixed by the segment width
// and k is limited to digest size / b.
type DigestSegment[V ~string | ~[]byte] struct {
	segmentBytes uint
	digestBytes  uint
	k            uint
	newDigest    func() hash.Hash
}

// NewDigestSegment creates a digest segment strategy with k segments of
// segmentBytes each. The digest defaults to MD5 (16 bytes); see WithDigest.
func NewDigestSegment[V ~string | ~[]byte](segmentBytes, k uint, opts ...Option) (*DigestSegment[V], error) {
	o := applyOptions(opts)
	digestBytes := uint(o.digest().Size())

	if k == 0 {
		return nil, fmt.Errorf("hash function count must be at least 1: %w", ErrConfiguration)
	}
	if segmentBytes == 0 || segmentBytes > maxSegmentBytes || 8*segmentBytes >= bits.UintSize {
		return nil, fmt.Errorf("segment width %d bytes not supported: %w", segmentBytes, ErrConfiguration)
	}
	if k > digestBytes/segmentBytes {
		return nil, fmt.Errorf("%d segments of %d bytes exceed a %d byte digest: %w",
			k, segmentBytes, digestBytes, ErrConfiguration)
	}
	return &DigestSegment[V]{
		segmentBytes: segmentBytes,
		digestBytes:  digestBytes,
		k:            k,
		newDigest:    o.digest,
	}, nil
}

// Indices digests v and returns the first k segments.
// Each call digests into its own buffer.
func (s *DigestSegment[V]) Indices(v V) []uint {
	d := s.newDigest()
	d.Write([]byte(v))
	sum := d.Sum(make([]byte, 0, s.digestBytes))

	out := make([]uint, s.k)
	for i := range out {
		off := uint(i) * s.segmentBytes
		out[i] = readSegment(sum[off:off+s.segmentBytes])
	}
	return out
}

// SegmentBytes returns the width b of one segment.
func (s *DigestSegment[V]) SegmentBytes() uint {
	return s.segmentBytes
}

// DigestBytes returns the digest size D.
func (s *DigestSegment[V]) DigestBytes() uint {
	return s.digestBytes
}

func (s *DigestSegment[V]) HashCount() uint {
	return s.k
}

func (s *DigestSegment[V]) StoreBits() uint {
	return 1 << (8 * s.segmentBytes)
}

// readSegment reads b as an unsigned big endian integer.
func readSegment(b []byte) uint {
	switch len(b) {
	case 1:
		return uint(b[0])
	case 2:
		return uint(binary.BigEndian.Uint16(b))
	case 4:
		return uint(binary.BigEndian.Uint32(b))
	}
	var x uint
	for _, c := range b {
		x = x<<8 | uint(c)
	}
	return x
}
