package bloomfilter

import (
	"crypto/md5"
	"hash"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultStoreBits is the store size used by NewDefault (8 KiB of bits).
	DefaultStoreBits = 8192 * 8
	// DefaultHashCount is the hash function count used by NewDefault.
	DefaultHashCount = 6
)

type options struct {
	seed   uint64
	seeded bool
	hasher Hasher64
	digest func() hash.Hash
	logger *zap.Logger
}

// Option configures a strategy or a filter. Options that do not apply to the
// component being built are ignored.
type Option func(*options)

// WithSeed fixes the seed of the masked hash strategy. Filters built with the
// same seed and parameters derive the same indices for the same values.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithHasher replaces the 64-bit value hash of the masked hash strategy.
func WithHasher(h Hasher64) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithDigest replaces the cryptographic digest of the digest segment
// strategy, e.g. sha256.New.
func WithDigest(newDigest func() hash.Hash) Option {
	return func(o *options) {
		if newDigest != nil {
			o.digest = newDigest
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		hasher: XXHash,
		digest: md5.New,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}
	return o
}
