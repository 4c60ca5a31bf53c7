package bignum

import (
	"math"
)

const (
	floatMantMask = 1<<(mantBits-1) - 1
	floatExpMask  = 0x7FF
	floatExpBias  = 1023
)

// IntFromFloat64 returns f truncated toward zero. NaN and the infinities are
// not in range and return zero with inRange == false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	}

	fb := math.Float64bits(f)
	exp := int((fb>>(mantBits-1))&floatExpMask) - floatExpBias
	if exp < 0 {
		// |f| < 1, including subnormals and zero.
		return out, true
	}

	// The mantissa with its implicit bit is an integer m where |f| = m * 2**(exp-52).
	m := nat{fb&floatMantMask | 1<<(mantBits-1)}
	shift := exp - (mantBits - 1)
	var abs nat
	if shift >= 0 {
		abs = m.shl(uint(shift))
	} else {
		abs = m.shr(uint(-shift))
	}
	return makeInt(f < 0, abs), true
}

// SetFloat64 replaces x with f truncated toward zero. If f is NaN or infinite,
// x is set to zero and false is returned.
func (x *Int) SetFloat64(f float64) (inRange bool) {
	*x, inRange = IntFromFloat64(f)
	return inRange
}

// Float64 returns x as a float64, truncated toward zero when x has more
// significant bits than a float64 mantissa holds. Values beyond the float64
// range return ±Inf.
func (x Int) Float64() float64 {
	bl := x.abs.bitLen()
	var f float64
	if bl <= 64 {
		w := x.abs.word()
		if bl > mantBits {
			w &^= 1<<uint(bl-mantBits) - 1
		}
		f = float64(w)
	} else {
		shift := uint(bl - mantBits)
		f = math.Ldexp(float64(x.abs.shr(shift).word()), int(shift))
	}
	if x.neg {
		f = -f
	}
	return f
}
