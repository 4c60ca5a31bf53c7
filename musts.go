package bignum

import (
	"fmt"
)

// MustParseInt is like ParseInt but panics if s cannot be parsed.
func MustParseInt(s string, base int) Int {
	x, err := ParseInt(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q, %d) failed: %v", s, base, err))
	}
	return x
}

// MustIntFromString is like IntFromString but panics if s cannot be parsed.
func MustIntFromString(s string) Int {
	x, err := IntFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustIntFromString(%q) failed: %v", s, err))
	}
	return x
}

// MustQuo is like Int.Quo but panics if d is zero.
func (x Int) MustQuo(d Int) Int {
	q, err := x.Quo(d)
	if err != nil {
		panic(fmt.Sprintf("Quo(%v) failed: %v", d, err))
	}
	return q
}

// MustRem is like Int.Rem but panics if d is zero.
func (x Int) MustRem(d Int) Int {
	r, err := x.Rem(d)
	if err != nil {
		panic(fmt.Sprintf("Rem(%v) failed: %v", d, err))
	}
	return r
}

// MustRoot is like Int.Root but panics on an invalid root domain.
func (x Int) MustRoot(n uint64) Int {
	r, err := x.Root(n)
	if err != nil {
		panic(fmt.Sprintf("Root(%v) failed: %v", n, err))
	}
	return r
}

func (x Int) MustSqrt() Int {
	r, err := x.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("Sqrt() failed: %v", err))
	}
	return r
}

// MustInt64 is like Int.Int64 but panics if x does not fit in an int64.
func (x Int) MustInt64() int64 {
	v, err := x.Int64()
	if err != nil {
		panic(fmt.Sprintf("Int64() failed: %v", err))
	}
	return v
}

func (x Int) MustUint64() uint64 {
	v, err := x.Uint64()
	if err != nil {
		panic(fmt.Sprintf("Uint64() failed: %v", err))
	}
	return v
}
