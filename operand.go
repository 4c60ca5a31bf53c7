package bignum

// Operand is any value the free functions in this file accept: an Int or a
// native integer of any width. Each function converts its operands to Int and
// calls the single Int implementation, so an expression like 5 - x is
// written Sub(5, x).
type Operand interface {
	Int | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// IntOf converts any Operand to an Int.
func IntOf[T Operand](v T) Int {
	switch v := any(v).(type) {
	case Int:
		return v
	case int:
		return IntFrom64(int64(v))
	case int8:
		return IntFrom64(int64(v))
	case int16:
		return IntFrom64(int64(v))
	case int32:
		return IntFrom64(int64(v))
	case int64:
		return IntFrom64(v)
	case uint:
		return IntFromU64(uint64(v))
	case uint8:
		return IntFromU64(uint64(v))
	case uint16:
		return IntFromU64(uint64(v))
	case uint32:
		return IntFromU64(uint64(v))
	case uint64:
		return IntFromU64(v)
	}
	panic("bignum: unreachable operand type")
}

func Add[A, B Operand](a A, b B) Int { return IntOf(a).Add(IntOf(b)) }
func Sub[A, B Operand](a A, b B) Int { return IntOf(a).Sub(IntOf(b)) }
func Mul[A, B Operand](a A, b B) Int { return IntOf(a).Mul(IntOf(b)) }

// Cmp compares a and b, returning -1, 0 or +1.
func Cmp[A, B Operand](a A, b B) int { return IntOf(a).Cmp(IntOf(b)) }

func Equal[A, B Operand](a A, b B) bool { return Cmp(a, b) == 0 }

// QuoRem divides a by b with the given rounding. See Int.QuoRemMode.
func QuoRem[A, B Operand](a A, b B, mode Rounding) (q, r Int, err error) {
	return IntOf(a).QuoRemMode(IntOf(b), mode)
}

func Quo[A, B Operand](a A, b B, mode Rounding) (Int, error) {
	q, _, err := QuoRem(a, b, mode)
	return q, err
}

func Rem[A, B Operand](a A, b B, mode Rounding) (Int, error) {
	_, r, err := QuoRem(a, b, mode)
	return r, err
}

// Pow returns base**e.
func Pow[A Operand](base A, e uint64) Int { return IntOf(base).Pow(e) }
