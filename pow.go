package bignum

// Pow returns x**e. x**0 is 1 for every x, including 0. The result is
// negative only when x is negative and e is odd.
func (x Int) Pow(e uint64) Int {
	return makeInt(x.neg && e&1 == 1, x.abs.expWord(e))
}

func (x *Int) SetPow(e uint64) { *x = x.Pow(e) }

// Fibonacci returns the nth Fibonacci number, with F(0) = 0 and F(1) = 1.
//
// It uses the doubling identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)**2 + F(k)**2
//
// walking the bits of n from the top.
func Fibonacci(n uint64) Int {
	var a, b nat = nil, nat{1} // F(k), F(k+1)
	for i := 63; i >= 0; i-- {
		c := a.mul(b.shl(1).sub(a))
		d := a.sqr().add(b.sqr())
		if n&(1<<uint(i)) != 0 {
			a, b = d, c.add(d)
		} else {
			a, b = c, d
		}
	}
	return Int{abs: a}
}
