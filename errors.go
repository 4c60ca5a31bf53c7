package bignum

import "errors"

var (
	// ErrEmptyInput is returned when parsing a zero-length string.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidBase is returned for a base outside [MinBase, MaxBase]. Parsing
	// additionally accepts base 0.
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidFormat is returned when text contains a character that is not
	// a digit in the requested base, or is otherwise malformed.
	ErrInvalidFormat = errors.New("invalid number format")

	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRootDomain is returned for a root of order zero, and for an
	// even-order root of a negative value.
	ErrInvalidRootDomain = errors.New("invalid root domain")

	// ErrOverflow is returned by narrowing conversions when the value does
	// not fit in the target type.
	ErrOverflow = errors.New("value out of range")
)
