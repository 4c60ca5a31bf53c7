package bignum

// addSigned is the sign/magnitude sum that Add, Sub and the fused
// multiply-accumulate forms all reduce to. yneg is the sign of y as it is to
// be applied, so subtraction passes the flipped sign.
func addSigned(xneg bool, x nat, yneg bool, y nat) Int {
	if xneg == yneg {
		return makeInt(xneg, x.add(y))
	}
	// Signs differ: the larger magnitude decides the sign.
	switch x.cmp(y) {
	case 1:
		return makeInt(xneg, x.sub(y))
	case -1:
		return makeInt(yneg, y.sub(x))
	}
	return zeroInt
}

// addSignedWord is addSigned for a single-limb y.
func addSignedWord(xneg bool, x nat, yneg bool, y uint64) Int {
	if xneg == yneg {
		return makeInt(xneg, x.addWord(y))
	}
	switch x.cmpWord(y) {
	case 1:
		return makeInt(xneg, x.subWord(y))
	case -1:
		return makeInt(yneg, natFromU64(y-x.word()))
	}
	return zeroInt
}

// wordMag splits v into sign and magnitude. math.MinInt64 wraps to 1<<63.
func wordMag(v int64) (neg bool, m uint64) {
	m = uint64(v)
	if v < 0 {
		m = -m
	}
	return v < 0, m
}

// Add returns x + y.
func (x Int) Add(y Int) Int { return addSigned(x.neg, x.abs, y.neg, y.abs) }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return addSigned(x.neg, x.abs, !y.neg, y.abs) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return makeInt(x.neg != y.neg, x.abs.mul(y.abs)) }

func (x Int) Add64(y int64) Int {
	yneg, m := wordMag(y)
	return addSignedWord(x.neg, x.abs, yneg, m)
}

func (x Int) Sub64(y int64) Int {
	yneg, m := wordMag(y)
	return addSignedWord(x.neg, x.abs, !yneg, m)
}

func (x Int) Mul64(y int64) Int {
	yneg, m := wordMag(y)
	return makeInt(x.neg != yneg, x.abs.mulAddWW(m, 0))
}

func (x Int) AddU64(y uint64) Int { return addSignedWord(x.neg, x.abs, false, y) }
func (x Int) SubU64(y uint64) Int { return addSignedWord(x.neg, x.abs, true, y) }

// MulU64 returns x * y, multiplying the magnitude by the word directly.
func (x Int) MulU64(y uint64) Int { return makeInt(x.neg, x.abs.mulAddWW(y, 0)) }

// AddMul returns x + a*b. Only the product is materialised.
func (x Int) AddMul(a, b Int) Int {
	return addSigned(x.neg, x.abs, a.neg != b.neg, a.abs.mul(b.abs))
}

// SubMul returns x - a*b.
func (x Int) SubMul(a, b Int) Int {
	return addSigned(x.neg, x.abs, a.neg == b.neg, a.abs.mul(b.abs))
}

func (x Int) AddMulU64(a Int, b uint64) Int {
	return addSigned(x.neg, x.abs, a.neg, a.abs.mulAddWW(b, 0))
}

func (x Int) SubMulU64(a Int, b uint64) Int {
	return addSigned(x.neg, x.abs, !a.neg, a.abs.mulAddWW(b, 0))
}

// Mul2Exp returns x * 2**k, shifting the magnitude left by k bits.
func (x Int) Mul2Exp(k uint) Int { return makeInt(x.neg, x.abs.shl(k)) }

func (x *Int) SetAdd(y Int)       { *x = x.Add(y) }
func (x *Int) SetSub(y Int)       { *x = x.Sub(y) }
func (x *Int) SetMul(y Int)       { *x = x.Mul(y) }
func (x *Int) SetAddMul(a, b Int) { *x = x.AddMul(a, b) }
func (x *Int) SetSubMul(a, b Int) { *x = x.SubMul(a, b) }
func (x *Int) SetMul2Exp(k uint)  { *x = x.Mul2Exp(k) }

func (x *Int) SetAddMulU64(a Int, b uint64) { *x = x.AddMulU64(a, b) }
func (x *Int) SetSubMulU64(a Int, b uint64) { *x = x.SubMulU64(a, b) }
