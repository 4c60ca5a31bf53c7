package bignum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntRoot(t *testing.T) {
	for idx, tc := range []struct {
		in    Int
		n     uint64
		out   string
		exact bool
	}{
		{i64(0), 1, "0", true},
		{i64(0), 7, "0", true},
		{i64(1), 7, "1", true},
		{i64(-1), 7, "-1", true},
		{i64(12345), 1, "12345", true},
		{i64(4294967296), 16, "4", true},
		{i64(4294967297), 16, "4", false},
		{i64(4294967295), 16, "3", false},
		{i64(65556), 2, "256", false},
		{i64(65536), 2, "256", true},
		{i64(-27), 3, "-3", true},
		{i64(-28), 3, "-3", false},
		{i64(-26), 3, "-2", false},
		{i64(1000), 64, "1", false},
		{ints("239072435685151324847153"), 19, "17", true},
		{ints("895430243255237372246531"), 23, "11", true},
		{ints("15241578750190521"), 2, "123456789", true},
		{ints("15241578750190520"), 2, "123456788", false},
		{ints("340282366920938463463374607431768211456"), 2, "18446744073709551616", true},
		{ints("340282366920938463463374607431768211455"), 2, "18446744073709551615", false},
	} {
		t.Run(fmt.Sprintf("%d/root(%s,%d)", idx, tc.in, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, err := tc.in.Root(tc.n)
			tt.MustOK(err)
			tt.MustEqual(tc.out, r.String())

			root, rem, err := tc.in.RootRem(tc.n)
			tt.MustOK(err)
			tt.MustAssert(root.Equal(r))
			tt.MustEqual(tc.exact, rem.IsZero())
			tt.MustAssert(tc.in.Equal(root.Pow(tc.n).Add(rem)))

			v := tc.in
			exact, err := v.SetRoot(tc.n)
			tt.MustOK(err)
			tt.MustEqual(tc.exact, exact)
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestIntRootDomain(t *testing.T) {
	for idx, tc := range []struct {
		in Int
		n  uint64
	}{
		{i64(5), 0},
		{i64(0), 0},
		{i64(-5), 0},
		{i64(-4), 2},
		{i64(-16), 4},
	} {
		t.Run(fmt.Sprintf("%d/root(%s,%d)", idx, tc.in, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := tc.in.Root(tc.n)
			tt.MustAssert(errors.Is(err, ErrInvalidRootDomain))

			v := tc.in
			_, err = v.SetRoot(tc.n)
			tt.MustAssert(errors.Is(err, ErrInvalidRootDomain))
			tt.MustAssert(v.Equal(tc.in))
		})
	}
}

func TestIntSqrt(t *testing.T) {
	tt := assert.WrapTB(t)

	r, err := i64(65556).Sqrt()
	tt.MustOK(err)
	tt.MustEqual("256", r.String())

	v := i64(65556)
	tt.MustOK(v.SetSqrt())
	tt.MustEqual("256", v.String())

	_, err = i64(-1).Sqrt()
	tt.MustAssert(errors.Is(err, ErrInvalidRootDomain))

	v = i64(-1)
	tt.MustAssert(errors.Is(v.SetSqrt(), ErrInvalidRootDomain))
	tt.MustEqual("-1", v.String())
}

func TestIntIsPerfectSquare(t *testing.T) {
	for idx, tc := range []struct {
		in  Int
		out bool
	}{
		{i64(0), true},
		{i64(1), true},
		{i64(2), false},
		{i64(4), true},
		{i64(-4), false},
		{i64(-1), false},
		{i64(17), false},
		{ints("15241578750190521"), true},
		{ints("15241578750190520"), false},
		{ints("340282366920938463463374607431768211456"), true},
		{ints("340282366920938463426481119284349108225"), true},
		{ints("340282366920938463426481119284349108224"), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.IsPerfectSquare())
		})
	}
}

func TestIntIsPerfectPower(t *testing.T) {
	for idx, tc := range []struct {
		in  Int
		out bool
	}{
		{i64(0), true},
		{i64(1), true},
		{i64(-1), true},
		{i64(2), false},
		{i64(-2), false},
		{i64(4), true},
		{i64(-4), false},
		{i64(8), true},
		{i64(-8), true},
		{i64(-16), false},
		{i64(-32), true},
		{i64(-64), true},
		{i64(6), false},
		{i64(36), true},
		{i64(-36), false},
		{i64(-216), true},
		{i64(40353607), true},
		{i64(40353596), false},
		{i64(-134217728), true},
		{ints("895430243255237372246531"), true},
		{ints("-895430243255237372246531"), true},
		{ints("895430243255237372246530"), false},
		{ints("239072435685151324847153"), true},
		{ints("15241578750190521"), true},
		{ints("-15241578750190521"), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.IsPerfectPower())
		})
	}
}
