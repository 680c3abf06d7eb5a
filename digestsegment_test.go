package bloomfilter

import (
	"crypto/md5"
	"crypto/sha256"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSegment(t *testing.T) {
	assert.Equal(t, uint(0xab), readSegment([]byte{0xab}))
	assert.Equal(t, uint(0x0102), readSegment([]byte{0x01, 0x02}))
	assert.Equal(t, uint(0x010203), readSegment([]byte{0x01, 0x02, 0x03}))
	assert.Equal(t, uint(0xdeadbeef), readSegment([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestDigestSegmentIndices(t *testing.T) {
	s, err := NewDigestSegment[string](2, 8)
	require.NoError(t, err)
	assert.Equal(t, uint(16), s.DigestBytes())
	assert.Equal(t, uint(2), s.SegmentBytes())
	assert.Equal(t, uint(8), s.HashCount())
	assert.Equal(t, uint(65536), s.StoreBits())

	sum := md5.Sum([]byte("hello"))
	idx := s.Indices("hello")
	require.Len(t, idx, 8)
	for i := range idx {
		assert.Equal(t, uint(sum[2*i])<<8|uint(sum[2*i+1]), idx[i])
	}
	assert.Equal(t, idx, s.Indices("hello"))
}

func TestDigestSegmentWidths(t *testing.T) {
	s1, err := NewDigestSegment[[]byte](1, 16)
	require.NoError(t, err)
	assert.Equal(t, uint(256), s1.StoreBits())
	for _, i := range s1.Indices([]byte("x")) {
		assert.Less(t, i, uint(256))
	}

	s3, err := NewDigestSegment[[]byte](3, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(1<<24), s3.StoreBits())
	sum := md5.Sum([]byte("y"))
	assert.Equal(t, uint(sum[0])<<16|uint(sum[1])<<8|uint(sum[2]), s3.Indices([]byte("y"))[0])
}

func TestDigestSegmentSHA256(t *testing.T) {
	_, err := NewDigestSegment[string](2, 16)
	assert.ErrorIs(t, err, ErrConfiguration)

	s, err := NewDigestSegment[string](2, 16, WithDigest(sha256.New))
	require.NoError(t, err)
	assert.Equal(t, uint(32), s.DigestBytes())

	sum := sha256.Sum256([]byte("abc"))
	idx := s.Indices("abc")
	assert.Equal(t, uint(sum[30])<<8|uint(sum[31]), idx[15])
}

func TestDigestSegmentConfiguration(t *testing.T) {
	for _, tc := range []struct {
		name         string
		segmentBytes uint
		k            uint
	}{
		{"zero k", 2, 0},
		{"zero width", 0, 4},
		{"too wide", 5, 1},
		{"not enough digest", 2, 9},
		{"not enough digest wide", 4, 5},
		{"segment product wraps", 2, uint(1) << (bits.UintSize - 1)},
		{"huge k", 1, ^uint(0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDigestSegment[string](tc.segmentBytes, tc.k)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}

	_, err := NewDigestSegment[string](4, 4)
	assert.NoError(t, err)
	_, err = NewDigestSegment[string](3, 5)
	assert.NoError(t, err)
	_, err = NewDigestSegment[string](3, 6)
	assert.ErrorIs(t, err, ErrConfiguration)
}
