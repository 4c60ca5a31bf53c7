package bignum

import "fmt"

// Rounding selects how a quotient is rounded when the division is inexact.
// Every mode satisfies n == q*d + r.
type Rounding int

const (
	// Truncate rounds q toward zero. r takes the sign of n.
	Truncate Rounding = iota

	// Floor rounds q toward negative infinity. r takes the sign of d.
	Floor

	// Ceil rounds q toward positive infinity. r takes the sign opposite to d.
	Ceil
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	}
	return fmt.Sprintf("Rounding(%d)", int(r))
}

// QuoRemMode returns the quotient and remainder of x / d rounded according to
// mode. All the other division methods are built on it.
func (x Int) QuoRemMode(d Int, mode Rounding) (q, r Int, err error) {
	if mode < Truncate || mode > Ceil {
		return q, r, fmt.Errorf("bignum: unknown rounding mode %d", int(mode))
	}
	if d.IsZero() {
		return q, r, fmt.Errorf("bignum: %s division: %w", mode, ErrDivisionByZero)
	}

	qa, ra := x.abs.div(d.abs)
	q = makeInt(x.neg != d.neg, qa)
	r = makeInt(x.neg, ra)

	if r.IsZero() {
		return q, r, nil
	}

	switch mode {
	case Floor:
		if r.neg != d.neg {
			q = q.Sub(oneInt)
			r = r.Add(d)
		}
	case Ceil:
		if r.neg == d.neg {
			q = q.Add(oneInt)
			r = r.Sub(d)
		}
	}
	return q, r, nil
}

// QuoRem returns the quotient and remainder of x / d, truncated toward zero.
// The remainder has the sign of x, matching the C remainder operator:
//
//	q = x/d      with the result truncated to zero
//	r = x - d*q
//
// QuoRem returns ErrDivisionByZero if d is zero.
func (x Int) QuoRem(d Int) (q, r Int, err error) { return x.QuoRemMode(d, Truncate) }

// Quo returns the quotient x / d truncated toward zero.
func (x Int) Quo(d Int) (q Int, err error) {
	q, _, err = x.QuoRemMode(d, Truncate)
	return q, err
}

// Rem returns the remainder of x / d, which has the sign of x.
func (x Int) Rem(d Int) (r Int, err error) {
	_, r, err = x.QuoRemMode(d, Truncate)
	return r, err
}

func (x Int) FloorQuoRem(d Int) (q, r Int, err error) { return x.QuoRemMode(d, Floor) }

func (x Int) FloorQuo(d Int) (q Int, err error) {
	q, _, err = x.QuoRemMode(d, Floor)
	return q, err
}

func (x Int) FloorRem(d Int) (r Int, err error) {
	_, r, err = x.QuoRemMode(d, Floor)
	return r, err
}

func (x Int) CeilQuoRem(d Int) (q, r Int, err error) { return x.QuoRemMode(d, Ceil) }

func (x Int) CeilQuo(d Int) (q Int, err error) {
	q, _, err = x.QuoRemMode(d, Ceil)
	return q, err
}

func (x Int) CeilRem(d Int) (r Int, err error) {
	_, r, err = x.QuoRemMode(d, Ceil)
	return r, err
}

// quoRem2Exp divides by 2**k. The magnitude split is a pair of shifts; the
// rounding adjustment matches QuoRemMode with a positive divisor.
func (x Int) quoRem2Exp(k uint, mode Rounding) (q, r Int) {
	q = makeInt(x.neg, x.abs.shr(k))
	r = makeInt(x.neg, x.abs.lowBits(k))
	if r.IsZero() {
		return q, r
	}
	switch {
	case mode == Floor && r.neg:
		q = q.Sub(oneInt)
		r = r.Add(Int{abs: pow2(k)})
	case mode == Ceil && !r.neg:
		q = q.Add(oneInt)
		r = r.Sub(Int{abs: pow2(k)})
	}
	return q, r
}

// quo2Exp is the quotient half of quoRem2Exp. It never builds 2**k, so any
// k is safe.
func (x Int) quo2Exp(k uint, mode Rounding) Int {
	q := makeInt(x.neg, x.abs.shr(k))
	if len(x.abs) == 0 || x.abs.trailingZeroBits() >= k {
		return q
	}
	switch {
	case mode == Floor && x.neg:
		q = q.Sub(oneInt)
	case mode == Ceil && !x.neg:
		q = q.Add(oneInt)
	}
	return q
}

// Quo2Exp returns x / 2**k truncated toward zero.
func (x Int) Quo2Exp(k uint) Int { return x.quo2Exp(k, Truncate) }

func (x Int) Rem2Exp(k uint) Int {
	_, r := x.quoRem2Exp(k, Truncate)
	return r
}

func (x Int) FloorQuo2Exp(k uint) Int { return x.quo2Exp(k, Floor) }

func (x Int) FloorRem2Exp(k uint) Int {
	_, r := x.quoRem2Exp(k, Floor)
	return r
}

// CeilQuo2Exp returns x / 2**k rounded toward positive infinity.
func (x Int) CeilQuo2Exp(k uint) Int { return x.quo2Exp(k, Ceil) }

// CeilRem2Exp returns the remainder matching CeilQuo2Exp, which is zero or
// negative.
func (x Int) CeilRem2Exp(k uint) Int {
	_, r := x.quoRem2Exp(k, Ceil)
	return r
}

// SetQuo replaces x with x / d truncated toward zero. x is unchanged if an
// error is returned.
func (x *Int) SetQuo(d Int) error { return x.SetQuoMode(d, Truncate) }

// SetRem replaces x with the truncated remainder of x / d.
func (x *Int) SetRem(d Int) error {
	r, err := x.Rem(d)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

func (x *Int) SetQuoMode(d Int, mode Rounding) error {
	q, _, err := x.QuoRemMode(d, mode)
	if err != nil {
		return err
	}
	*x = q
	return nil
}
