package bloomfilter

import "math"

// OptimalHashCount returns round(m/n * ln 2), at least 1.
// n == 0 is treated as 1.
func OptimalHashCount(m, n uint) uint {
	if n == 0 {
		n = 1
	}
	k := uint(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return k
}

// OptimalStoreBits returns the store size giving false-positive rate p for n
// values at the optimal hash count: ceil(-n ln p / ln^2 2).
//
// n == 0 is treated as 1, and p outside (0, 1) as 0.01.
func OptimalStoreBits(n uint, p float64) uint {
	if n == 0 {
		n = 1
	}
	if p <= 0 || p >= 1 {
		p = 0.01
	}
	return uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
}

// EstimateFalsePositiveRate returns (1 - e^(-kn/m))^k.
func EstimateFalsePositiveRate(m, k uint, n uint64) float64 {
	if m == 0 {
		return 1
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(m)), kf)
}

// FillRatio returns the fraction of set bits.
func (f *Filter[V]) FillRatio() float64 {
	return float64(f.store.Count()) / float64(f.store.Len())
}

// EstimatedCount approximates the number of distinct values added from the
// number of set bits: -m/k * ln(1 - x/m).
func (f *Filter[V]) EstimatedCount() float64 {
	m := float64(f.store.Len())
	k := float64(f.strategy.HashCount())
	x := float64(f.store.Count())
	if x == 0 {
		return 0
	}
	// a full store would give +Inf
	if x >= m {
		x = m - 1
	}
	return -m / k * math.Log(1-x/m)
}

// FalsePositiveRate estimates the current false-positive rate from the
// object count.
func (f *Filter[V]) FalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.store.Len(), f.strategy.HashCount(), f.objectCount)
}
