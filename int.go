package bignum

import (
	"math/big"
)

// Int is a signed integer of unbounded magnitude. The zero value is 0.
//
// Int is a value type. The pure methods return new values; the methods whose
// names start with Set replace the receiver's value with the result of the
// matching pure operation, all at once.
type Int struct {
	neg bool // never true when abs is zero
	abs nat
}

func makeInt(neg bool, abs nat) Int {
	abs = abs.norm()
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

func IntFrom64(v int64) Int {
	if v < 0 {
		// -v overflows for minInt64; the uint64 conversion does not.
		return Int{neg: true, abs: nat{uint64(^v) + 1}}
	}
	return Int{abs: natFromU64(uint64(v))}
}

func IntFromU64(v uint64) Int { return Int{abs: natFromU64(v)} }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromUint(v uint) Int  { return IntFromU64(uint64(v)) }

// IntFromBigInt converts from a big.Int. The result shares no storage with v.
func IntFromBigInt(v *big.Int) (out Int) {
	words := v.Bits()
	switch intSize {
	case 64:
		out.abs = make(nat, len(words))
		for i, w := range words {
			out.abs[i] = uint64(w)
		}
	case 32:
		out.abs = make(nat, (len(words)+1)/2)
		for i, w := range words {
			out.abs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
	default:
		panic("bignum: unsupported bit size")
	}
	return makeInt(v.Sign() < 0, out.abs)
}

// AsBigInt returns a new big.Int holding the same value.
func (x Int) AsBigInt() *big.Int {
	var words []big.Word
	switch intSize {
	case 64:
		words = make([]big.Word, len(x.abs))
		for i, w := range x.abs {
			words[i] = big.Word(w)
		}
	case 32:
		words = make([]big.Word, len(x.abs)*2)
		for i, w := range x.abs {
			words[2*i] = big.Word(w & 0xFFFFFFFF)
			words[2*i+1] = big.Word(w >> 32)
		}
	default:
		panic("bignum: unsupported bit size")
	}
	b := new(big.Int).SetBits(words)
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Sign returns -1 if x < 0, 0 if x == 0 and 1 if x > 0.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

func (x Int) IsZero() bool { return len(x.abs) == 0 }

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x Int) BitLen() int { return x.abs.bitLen() }

// Copy returns a deep copy of x that shares no storage with it.
func (x Int) Copy() Int {
	return Int{neg: x.neg, abs: x.abs.clone()}
}

// Set sets x to a deep copy of y.
func (x *Int) Set(y Int) { *x = y.Copy() }

// Swap exchanges the values of x and y.
func (x *Int) Swap(y *Int) { *x, *y = *y, *x }

func (x *Int) SetInt64(v int64)   { *x = IntFrom64(v) }
func (x *Int) SetUint64(v uint64) { *x = IntFromU64(v) }

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{neg: !x.neg && len(x.abs) > 0, abs: x.abs}
}

// Abs returns |x|.
func (x Int) Abs() Int { return Int{abs: x.abs} }

func (x *Int) SetNeg() { *x = x.Neg() }
func (x *Int) SetAbs() { *x = x.Abs() }
