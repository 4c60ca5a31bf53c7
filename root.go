package bignum

import "fmt"

// root returns floor(x**(1/n)) for n >= 1.
//
// Newton's iteration
//
//	z' = ((n-1)*z + x/z**(n-1)) / n
//
// decreases monotonically toward the root from any starting point above it,
// so it starts at 2**ceil(bitlen/n) and stops as soon as an iterate fails to
// decrease.
func (x nat) root(n uint64) nat {
	bl := uint64(x.bitLen())
	switch {
	case len(x) == 0 || n == 1:
		return x
	case n >= bl:
		// 1 <= x < 2**bl <= 2**n
		return nat{1}
	}

	z := pow2(uint((bl + n - 1) / n))
	n1 := n - 1
	for {
		q, _ := x.div(z.expWord(n1))
		t, _ := z.mulAddWW(n1, 0).add(q).divW(n)
		if t.cmp(z) >= 0 {
			return z
		}
		z = t
	}
}

// sqrt is root(2) with the iteration specialised to z' = (z + x/z) / 2.
func (x nat) sqrt() nat {
	if len(x) == 0 {
		return nil
	}
	z := pow2(uint(x.bitLen()+1) / 2)
	for {
		q, _ := x.div(z)
		t := z.add(q).shr(1)
		if t.cmp(z) >= 0 {
			return z
		}
		z = t
	}
}

func checkRoot(x Int, n uint64) error {
	switch {
	case n == 0:
		return fmt.Errorf("bignum: root of order 0: %w", ErrInvalidRootDomain)
	case x.neg && n&1 == 0:
		return fmt.Errorf("bignum: root of order %d of a negative value: %w", n, ErrInvalidRootDomain)
	}
	return nil
}

// RootRem returns the integer nth root of x, truncated toward zero, and the
// remainder x - root**n. For negative x, n must be odd and both results are
// negative or zero.
func (x Int) RootRem(n uint64) (root, rem Int, err error) {
	if err := checkRoot(x, n); err != nil {
		return root, rem, err
	}
	var ra nat
	if n == 2 {
		ra = x.abs.sqrt()
	} else {
		ra = x.abs.root(n)
	}
	root = makeInt(x.neg, ra)
	rem = makeInt(x.neg, x.abs.sub(ra.expWord(n)))
	return root, rem, nil
}

// Root returns the integer nth root of x: the r with |r|**n <= |x| < (|r|+1)**n
// and the same sign as x.
//
// Root returns ErrInvalidRootDomain if n is 0, or if n is even and x is
// negative.
func (x Int) Root(n uint64) (Int, error) {
	r, _, err := x.RootRem(n)
	return r, err
}

// SetRoot replaces x with its integer nth root and reports whether the root
// was exact. x is unchanged if an error is returned.
func (x *Int) SetRoot(n uint64) (exact bool, err error) {
	r, rem, err := x.RootRem(n)
	if err != nil {
		return false, err
	}
	*x = r
	return rem.IsZero(), nil
}

// Sqrt returns floor(sqrt(x)). Negative values return ErrInvalidRootDomain.
func (x Int) Sqrt() (Int, error) { return x.Root(2) }

func (x *Int) SetSqrt() error {
	_, err := x.SetRoot(2)
	return err
}

// squareMod16 has bit k set if k is a square mod 16.
const squareMod16 uint16 = 1<<0 | 1<<1 | 1<<4 | 1<<9

// IsPerfectSquare reports whether x == r*r for some integer r. Negative
// values are never perfect squares; 0 and 1 are.
func (x Int) IsPerfectSquare() bool {
	switch {
	case x.neg:
		return false
	case len(x.abs) == 0:
		return true
	case squareMod16&(1<<(x.abs[0]&15)) == 0:
		return false
	}
	r := x.abs.sqrt()
	return r.sqr().cmp(x.abs) == 0
}

// IsPerfectPower reports whether x == b**e for some integers b and e >= 2.
// 0, 1 and -1 are perfect powers. A negative x can only be an odd power.
func (x Int) IsPerfectPower() bool {
	if x.abs.cmpWord(1) <= 0 {
		return true
	}

	// Any composite exponent implies a prime one, so only primes are tried.
	// An odd composite has an odd prime factor, so skipping 2 for negative
	// values loses nothing.
	bl := uint64(x.abs.bitLen())

	// A power of two is b**e for every e dividing its exponent.
	if tz := uint64(x.abs.trailingZeroBits()); tz == bl-1 {
		if !x.neg {
			return tz >= 2
		}
		for p := uint64(3); p <= tz; p += 2 {
			if tz%p == 0 {
				return true
			}
		}
		return false
	}

	for p := uint64(2); p < bl; p++ {
		if p == 2 && x.neg || !isSmallPrime(p) {
			continue
		}
		r := x.abs.root(p)
		if r.expWord(p).cmp(x.abs) == 0 {
			return true
		}
	}
	return false
}

// isSmallPrime tests an exponent candidate by trial division. Exponents are
// bounded by a bit length, so this never sees a large p.
func isSmallPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}
	for d := uint64(3); d*d <= p; d += 2 {
		if p%d == 0 {
			return false
		}
	}
	return true
}
