package bignum

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return -x.abs.cmp(y.abs)
	}
	return x.abs.cmp(y.abs)
}

// Cmp64 compares x with a signed word without allocating.
func (x Int) Cmp64(y int64) int {
	yneg := y < 0
	switch {
	case x.neg != yneg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return -x.abs.cmpWord(uint64(^y) + 1)
	}
	return x.abs.cmpWord(uint64(y))
}

// CmpU64 compares x with an unsigned word without allocating.
func (x Int) CmpU64(y uint64) int {
	if x.neg {
		return -1
	}
	return x.abs.cmpWord(y)
}

func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && x.abs.cmp(y.abs) == 0
}

func (x Int) Equal64(y int64) bool   { return x.Cmp64(y) == 0 }
func (x Int) EqualU64(y uint64) bool { return x.CmpU64(y) == 0 }

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int { return x.abs.cmp(y.abs) }
