package bignum

// Difference returns |a - b|.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
