package bignum

import "math/bits"

// divW returns the quotient and remainder of x / y for a single-limb y != 0.
func (x nat) divW(y uint64) (q nat, r uint64) {
	m := len(x)
	switch {
	case y == 0:
		panic("bignum: nat division by zero")
	case y == 1:
		return x, 0
	case m == 0:
		return nil, 0
	}
	q = make(nat, m)
	r = divWVW(q, 0, x, y)
	return q.norm(), r
}

// div returns the truncated quotient and remainder of u / v. v must not be
// zero.
func (u nat) div(v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bignum: nat division by zero")
	}
	if u.cmp(v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		var rw uint64
		q, rw = u.divW(v[0])
		return q, natFromU64(rw)
	}
	return u.divLarge(v)
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for
// len(v) >= 2 and u >= v. The trial quotient for each step comes from a
// 128-by-64 division of the top two limbs, corrected against the second
// divisor limb before the multiply-subtract.
func (u nat) divLarge(v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: normalise so the top divisor limb has its high bit set.
	shift := uint(bits.LeadingZeros64(v[n-1]))
	vn := make(nat, n)
	shlVU(vn, v, shift)
	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, shift)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)
	vtop, vsec := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// D3
		qhat := uint64(maxUint64)
		if ujn := un[j+n]; ujn != vtop {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vtop)

			ujn2 := un[j+n-2]
			x1, x2 := bits.Mul64(qhat, vsec)
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
				x1, x2 = bits.Mul64(qhat, vsec)
			}
		}

		// D4: multiply and subtract. D6: add back if qhat was one too big.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv); c != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalise the remainder.
	r = make(nat, n)
	shrVU(r, un[:n], shift)
	return q.norm(), r.norm()
}
