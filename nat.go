package bignum

import "math/bits"

// nat is an unsigned magnitude stored as little-endian 64-bit limbs. The
// canonical zero is the empty slice and there are never any zero limbs at the
// most-significant end.
//
// A nat that has been stored in an Int is never written to again. Every
// method below returns a freshly allocated result and leaves its operands
// untouched, so sharing a nat between values is never observable.
type nat []uint64

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[0:i]
}

func natFromU64(v uint64) nat {
	if v == 0 {
		return nil
	}
	return nat{v}
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// word returns the low limb of x, or 0.
func (x nat) word() uint64 {
	if len(x) == 0 {
		return 0
	}
	return x[0]
}

func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i >= 0 && x[i] == y[i] {
		i--
	}
	switch {
	case i < 0:
		return 0
	case x[i] < y[i]:
		return -1
	}
	return 1
}

func (x nat) cmpWord(y uint64) int {
	switch {
	case len(x) > 1:
		return 1
	case len(x) == 0:
		if y == 0 {
			return 0
		}
		return -1
	case x[0] < y:
		return -1
	case x[0] > y:
		return 1
	}
	return 0
}

func (x nat) add(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return y.add(x)
	}
	if n == 0 {
		return x
	}
	z := make(nat, m+1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

func (x nat) addWord(y uint64) nat {
	if y == 0 {
		return x
	}
	m := len(x)
	if m == 0 {
		return nat{y}
	}
	z := make(nat, m+1)
	z[m] = addVW(z[:m], x, y)
	return z.norm()
}

// sub returns x - y. It panics if x < y; callers order their operands.
func (x nat) sub(y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("bignum: nat underflow")
	case n == 0:
		return x
	}
	z := make(nat, m)
	c := subVV(z[:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bignum: nat underflow")
	}
	return z.norm()
}

func (x nat) subWord(y uint64) nat {
	if y == 0 {
		return x
	}
	if x.cmpWord(y) < 0 {
		panic("bignum: nat underflow")
	}
	z := make(nat, len(x))
	subVW(z, x, y)
	return z.norm()
}

// mulAddWW returns x*y + r.
func (x nat) mulAddWW(y, r uint64) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return natFromU64(r)
	}
	z := make(nat, m+1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// mul returns x*y using schoolbook multiplication.
func (x nat) mul(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return y.mul(x)
	}
	switch {
	case n == 0:
		return nil
	case n == 1:
		return x.mulAddWW(y[0], 0)
	}
	z := make(nat, m+n)
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}
	return z.norm()
}

func (x nat) sqr() nat { return x.mul(x) }

// shl returns x << s.
func (x nat) shl(s uint) nat {
	m := len(x)
	if m == 0 {
		return nil
	}
	if s == 0 {
		return x
	}
	n := m + int(s/64)
	z := make(nat, n+1)
	z[n] = shlVU(z[n-m:n], x, s%64)
	return z.norm()
}

// shr returns x >> s.
func (x nat) shr(s uint) nat {
	m := len(x)
	if s/64 >= uint(m) {
		return nil
	}
	n := m - int(s/64)
	if s == 0 {
		return x
	}
	z := make(nat, n)
	shrVU(z, x[m-n:], s%64)
	return z.norm()
}

// lowBits returns x mod 2^s.
func (x nat) lowBits(s uint) nat {
	if s >= uint(x.bitLen()) {
		return x
	}
	n := int(s / 64)
	if s%64 != 0 {
		n++
	}
	z := make(nat, n)
	copy(z, x[:n])
	if r := s % 64; r != 0 {
		z[n-1] &= 1<<r - 1
	}
	return z.norm()
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*64 + bits.Len64(x[i])
	}
	return 0
}

func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*64 + uint(bits.TrailingZeros64(w))
		}
	}
	return 0
}

// pow2 returns 1 << s.
func pow2(s uint) nat {
	z := make(nat, s/64+1)
	z[s/64] = 1 << (s % 64)
	return z
}

// expWord returns x**y by repeated squaring, consuming the exponent from the
// most significant bit down.
func (x nat) expWord(y uint64) nat {
	switch {
	case y == 0:
		return nat{1}
	case y == 1 || len(x) == 0:
		return x
	case len(x) == 1 && x[0] == 1:
		return x
	case len(x) == 1 && x[0]&(x[0]-1) == 0:
		// Powers of two are a shift; watch for a shift count that would
		// not fit in a uint.
		shift := uint64(bits.TrailingZeros64(x[0]))
		hi, lo := bits.Mul64(shift, y)
		if hi == 0 && lo <= maxShift {
			return pow2(uint(lo))
		}
	}

	z := x
	for i := bits.Len64(y) - 2; i >= 0; i-- {
		z = z.sqr()
		if y&(1<<uint(i)) != 0 {
			z = z.mul(x)
		}
	}
	return z
}
