package bignum

import "math/bits"

// Word-vector primitives. z, x and y may be the same slice where the caller
// owns it; none of these allocate. Lengths are the caller's responsibility:
// every routine walks len(z) limbs.

// addVV sets z = x + y and returns the carry. len(x) and len(y) must be >= len(z).
func addVV(z, x, y nat) (c uint64) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y nat) (c uint64) {
	for i := range z {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

func addVW(z, x nat, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

func subVW(z, x nat, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < 64 and returns the bits shifted out of
// the top limb.
func shlVU(z, x nat, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := 64 - s
	n := len(z) - 1
	c = x[n] >> ŝ
	for i := n; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < 64 and returns the bits shifted out of
// the bottom limb, left-aligned.
func shrVU(z, x nat, s uint) (c uint64) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := 64 - s
	c = x[0] << ŝ
	n := len(z) - 1
	for i := 0; i < n; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[n] = x[n] >> s
	return c
}

// mulAddWWW returns the 128-bit result of x*y + c as (hi, lo).
func mulAddWWW(x, y, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var cc uint64
	lo, cc = bits.Add64(lo, c, 0)
	return hi + cc, lo
}

// mulAddVWW sets z = x*y + r and returns the carry limb.
func mulAddVWW(z, x nat, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry limb.
func addMulVVW(z, x nat, y uint64) (c uint64) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add64(z0, c, 0)
		c, z[i] = cc+z1, lo
	}
	return c
}

// divWVW divides the limb vector xn:x by y, storing the quotient in z and
// returning the remainder. xn must be < y.
func divWVW(z nat, xn uint64, x nat, y uint64) (r uint64) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// greaterThan reports whether the two-limb value x1:x2 is greater than y1:y2.
func greaterThan(x1, x2, y1, y2 uint64) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
