package bloomfilter

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Encoder returns the canonical byte representation of a value.
// Equal values must always encode to equal bytes.
type Encoder[V any] func(V) []byte

// StringEncoder encodes a string as its raw bytes.
func StringEncoder(s string) []byte {
	return []byte(s)
}

// BytesEncoder returns b unchanged.
func BytesEncoder(b []byte) []byte {
	return b
}

// Uint64Encoder encodes v as 8 big endian bytes.
func Uint64Encoder(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

// Int64Encoder encodes v as 8 big endian bytes (two's complement).
func Int64Encoder(v int64) []byte {
	return Uint64Encoder(uint64(v))
}

// Hasher64 maps a byte string to a well distributed 64-bit value.
type Hasher64 func([]byte) uint64

var (
	// XXHash is the default hasher of the masked hash strategy.
	XXHash Hasher64 = xxhash.Sum64
	// Murmur3 uses the 64-bit half of MurmurHash3 x64_128.
	Murmur3 Hasher64 = murmur3.Sum64
)
