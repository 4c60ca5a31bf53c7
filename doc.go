/*
Package bignum provides Int, a signed integer of unbounded magnitude with exact
arithmetic, division in three rounding modes, powers, integer roots and
conversion to and from text in bases 2 to 62.

Int is a value type; all operations return new values. Methods named SetXxx
replace the receiver with the result of the matching pure operation.

Simple example:

	x := IntFrom64(29).Pow(23)
	fmt.Println(x)
	// Output: 4316720717749415770740818372739989

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFromU64(v uint64) Int
	IntFromInt(v int) Int
	IntFromUint(v uint) Int
	IntFromFloat64(f float64) (out Int, inRange bool)
	IntFromString(s string) (out Int, err error)
	ParseInt(s string, base int) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

The free functions Add, Sub, Mul, Cmp, QuoRem, Quo, Rem and Pow accept an Int
or any native integer in either position:

	d, err := Quo(int64(-101), IntFrom64(25), Floor) // -5

Division by zero and invalid roots are reported as errors rather than panics.
Quo, Rem and QuoRem truncate toward zero, and the remainder takes the sign of
the dividend. The Floor and Ceil variants round the quotient toward negative
and positive infinity.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
