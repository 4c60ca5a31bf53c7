package bignum

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	MinBase = 2
	MaxBase = 10 + ('z' - 'a' + 1) + ('Z' - 'A' + 1)

	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	mixedDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// digitValue returns the value of ch as a digit, or MaxBase if ch is not a
// digit in any base. Letters are case-insensitive up to base 36; above that,
// upper case letters come before lower case ones.
func digitValue(ch byte, base int) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	case 'a' <= ch && ch <= 'z':
		if base <= 36 {
			return int(ch-'a') + 10
		}
		return int(ch-'a') + 36
	}
	return MaxBase
}

func digitsFor(base int) string {
	if base <= 36 {
		return lowerDigits
	}
	return mixedDigits
}

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a limb.
func maxPow(b uint64) (p uint64, n int) {
	p, n = b, 1
	for lim := uint64(maxUint64) / b; p <= lim; {
		p *= b
		n++
	}
	return p, n
}

// scan converts a string of digits (no sign, no prefix) in the given base.
// Digits are accumulated a limb's worth at a time: each batch is folded in
// with a single z*b**n + acc.
func scan(s string, base int) (nat, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("bignum: no digits: %w", ErrInvalidFormat)
	}

	b := uint64(base)
	bn, n := maxPow(b)

	var z nat
	var acc uint64
	var cnt int
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d >= base {
			return nil, fmt.Errorf("bignum: invalid digit %q at offset %d for base %d: %w",
				s[i], i, base, ErrInvalidFormat)
		}
		acc = acc*b + uint64(d)
		cnt++
		if cnt == n {
			z = z.mulAddWW(bn, acc)
			acc, cnt = 0, 0
		}
	}
	if cnt > 0 {
		p := uint64(1)
		for ; cnt > 0; cnt-- {
			p *= b
		}
		z = z.mulAddWW(p, acc)
	}
	return z.norm(), nil
}

// utoa appends the digits of x in the given base to buf. Base must be
// within [MinBase, MaxBase].
func (x nat) utoa(buf []byte, base int) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	digits := digitsFor(base)

	// Upper bound on the digit count; the buffer is filled from the right.
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 2
	s := make([]byte, i)

	if b := uint64(base); b&(b-1) == 0 {
		shift := uint(bits.TrailingZeros64(b))
		mask := b - 1
		nbits := uint(x.bitLen())
		for pos := uint(0); pos < nbits; pos += shift {
			k, off := pos/64, pos%64
			w := x[k] >> off
			if off+shift > 64 && int(k)+1 < len(x) {
				w |= x[k+1] << (64 - off)
			}
			i--
			s[i] = digits[w&mask]
		}

	} else {
		bn, n := maxPow(b)
		q := x
		for len(q) > 0 {
			var r uint64
			q, r = q.divW(bn)
			for j := 0; j < n; j++ {
				i--
				s[i] = digits[r%b]
				r /= b
				if len(q) == 0 && r == 0 {
					break
				}
			}
		}
	}

	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return append(buf, s[i:]...)
}
