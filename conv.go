package bignum

import (
	"bytes"
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// ParseInt interprets s in the given base and returns the value.
//
// base must be 0 or in [MinBase, MaxBase]. For base 0 the prefix after the
// sign selects the base: "0x" or "0X" for 16, "0b" or "0B" for 2, "0o", "0O"
// or a bare leading "0" for 8, and 10 otherwise.
//
// s may start with a single '-'. Whitespace, '+' and digit separators are not
// accepted. Up to base 36 letters are case-insensitive; above that 'A'-'Z'
// are the digits 10-35 and 'a'-'z' are 36-61.
//
// On failure the returned value is zero and the error wraps one of
// ErrEmptyInput, ErrInvalidBase or ErrInvalidFormat.
func ParseInt(s string, base int) (out Int, err error) {
	if len(s) == 0 {
		return out, fmt.Errorf("bignum: parse: %w", ErrEmptyInput)
	}
	if base != 0 && (base < MinBase || base > MaxBase) {
		return out, fmt.Errorf("bignum: parse base %d: %w", base, ErrInvalidBase)
	}

	digits := s
	neg := false
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if base == 0 {
		base, digits = detectBase(digits)
	}

	abs, err := scan(digits, base)
	if err != nil {
		return out, fmt.Errorf("bignum: parse %q: %w", s, err)
	}
	return makeInt(neg, abs), nil
}

func detectBase(s string) (base int, rest string) {
	if len(s) < 2 || s[0] != '0' {
		return 10, s
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:]
	case 'b', 'B':
		return 2, s[2:]
	case 'o', 'O':
		return 8, s[2:]
	}
	return 8, s[1:]
}

// IntFromString parses a base 10 string.
func IntFromString(s string) (out Int, err error) {
	return ParseInt(s, 10)
}

// SetString replaces x with the value of s in the given base, as for
// ParseInt. If an error is returned, x is set to zero.
func (x *Int) SetString(s string, base int) error {
	v, err := ParseInt(s, base)
	*x = v
	return err
}

// Append appends the text form of x in the given base to buf.
func (x Int) Append(buf []byte, base int) ([]byte, error) {
	if base < MinBase || base > MaxBase {
		return buf, fmt.Errorf("bignum: format base %d: %w", base, ErrInvalidBase)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return x.abs.utoa(buf, base), nil
}

// Text returns x in the given base: an optional '-' followed by digits,
// most significant first, with no leading zeros. Digits above 9 are lower
// case letters up to base 36 and "A-Za-z" above it. The output is accepted by
// ParseInt with the same base.
func (x Int) Text(base int) (string, error) {
	buf, err := x.Append(nil, base)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (x Int) String() string {
	buf, _ := x.Append(nil, 10)
	return string(buf)
}

// DigitCount returns the number of digits needed to write |x| in the given
// base. Zero has one digit.
func (x Int) DigitCount(base int) (int, error) {
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("bignum: digit count base %d: %w", base, ErrInvalidBase)
	}
	if b := uint64(base); b&(b-1) == 0 && len(x.abs) > 0 {
		shift := x.abs.bitLen()
		per := bitsPerDigit(b)
		return (shift + per - 1) / per, nil
	}
	return len(x.abs.utoa(nil, base)), nil
}

func bitsPerDigit(b uint64) (n int) {
	for ; b > 1; b >>= 1 {
		n++
	}
	return n
}

// Format implements fmt.Formatter. It accepts the verbs 'b', 'o', 'O', 'd',
// 's', 'v', 'x' and 'X', the flags '+', ' ', '-', '0' and '#', a width and a
// precision (the minimum number of digits).
func (x Int) Format(s fmt.State, c rune) {
	base := 10
	var prefix string
	switch c {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'O':
		base, prefix = 8, "0o"
	case 'd', 's', 'v':
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", c, x.String())
		return
	}
	if c != 'O' && !s.Flag('#') {
		prefix = ""
	}

	digits := x.abs.utoa(nil, base)
	if c == 'X' {
		digits = bytes.ToUpper(digits)
	}

	var sign string
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	if prec, ok := s.Precision(); ok {
		if prec == 0 && x.IsZero() {
			digits = digits[:0]
		} else if n := prec - len(digits); n > 0 {
			digits = append(bytes.Repeat([]byte{'0'}, n), digits...)
		}
	}

	body := len(sign) + len(prefix) + len(digits)
	var pad int
	if w, ok := s.Width(); ok && w > body {
		pad = w - body
	}

	var out strings.Builder
	_, hasPrec := s.Precision()
	switch {
	case s.Flag('-'):
		out.WriteString(sign)
		out.WriteString(prefix)
		out.Write(digits)
		out.WriteString(strings.Repeat(" ", pad))
	case s.Flag('0') && !hasPrec:
		out.WriteString(sign)
		out.WriteString(prefix)
		out.WriteString(strings.Repeat("0", pad))
		out.Write(digits)
	default:
		out.WriteString(strings.Repeat(" ", pad))
		out.WriteString(sign)
		out.WriteString(prefix)
		out.Write(digits)
	}
	fmt.Fprint(s, out.String())
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	if len(x.abs) > 1 {
		return false
	}
	w := x.abs.word()
	if x.neg {
		return w <= 1<<63
	}
	return w <= maxInt64
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 1
}

// Int64 returns x as an int64, or ErrOverflow if it does not fit.
func (x Int) Int64() (int64, error) {
	if len(x.abs) > 1 {
		return 0, fmt.Errorf("bignum: %s to int64: %w", x.abbrev(), ErrOverflow)
	}
	w := x.abs.word()
	if x.neg {
		if w > 1<<63 {
			return 0, fmt.Errorf("bignum: %s to int64: %w", x.abbrev(), ErrOverflow)
		}
		return -int64(w-1) - 1, nil
	}
	v, err := safecast.Conv[int64](w)
	if err != nil {
		return 0, fmt.Errorf("bignum: %s to int64: %w (%v)", x.abbrev(), ErrOverflow, err)
	}
	return v, nil
}

// Uint64 returns x as a uint64. Negative values and values wider than 64
// bits return ErrOverflow.
func (x Int) Uint64() (uint64, error) {
	if !x.IsUint64() {
		return 0, fmt.Errorf("bignum: %s to uint64: %w", x.abbrev(), ErrOverflow)
	}
	return x.abs.word(), nil
}

// Int returns x as an int, or ErrOverflow if it does not fit.
func (x Int) Int() (int, error) {
	v, err := x.Int64()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("bignum: %d to int: %w", v, ErrOverflow)
	}
	return n, nil
}

// Uint returns x as a uint, or ErrOverflow if it does not fit.
func (x Int) Uint() (uint, error) {
	v, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Conv[uint](v)
	if err != nil {
		return 0, fmt.Errorf("bignum: %d to uint: %w", v, ErrOverflow)
	}
	return n, nil
}

// abbrev is the value for use in error messages; wide values are described by
// their size rather than printed in full.
func (x Int) abbrev() string {
	if len(x.abs) > 4 {
		return fmt.Sprintf("%d-bit value", x.BitLen())
	}
	return x.String()
}

func (x Int) MarshalText() ([]byte, error) {
	return x.Append(nil, 10)
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a base 10 integer, either quoted or bare.
func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q: %w", string(bts), ErrInvalidFormat)
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseInt(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
