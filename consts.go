package bignum

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// Largest shift count expWord will turn into a single pow2 allocation.
	maxShift = 1<<31 - 1

	// float64 mantissa width, including the implicit bit.
	mantBits = 53

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zeroInt Int
	oneInt  = Int{abs: nat{1}}
)
