package bloomfilter

// Strategy derives the bit positions of a value.
//
// Indices must be a pure function of v for a given strategy instance: it
// returns HashCount() positions, each in [0, StoreBits()).
type Strategy[V any] interface {
	Indices(v V) []uint
	HashCount() uint
	StoreBits() uint
}
