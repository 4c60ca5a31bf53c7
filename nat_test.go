package bignum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/golib/assert"
)

func TestNatNorm(t *testing.T) {
	for idx, tc := range []struct {
		in  nat
		out nat
	}{
		{nil, nil},
		{nat{}, nil},
		{nat{0}, nil},
		{nat{0, 0, 0}, nil},
		{nat{1, 0}, nat{1}},
		{nat{0, 1, 0, 0}, nat{0, 1}},
		{nat{1, 2, 3}, nat{1, 2, 3}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			if diff := cmp.Diff(tc.out, tc.in.norm()); diff != "" {
				t.Fatalf("norm() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNatAddCarries(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c nat
	}{
		{nil, nil, nil},
		{nat{1}, nil, nat{1}},
		{nil, nat{1}, nat{1}},
		{nat{maxUint64}, nat{1}, nat{0, 1}},
		{nat{maxUint64, maxUint64}, nat{1}, nat{0, 0, 1}},
		{nat{maxUint64, maxUint64}, nat{maxUint64, maxUint64}, nat{maxUint64 - 1, maxUint64, 1}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			if diff := cmp.Diff(tc.c, tc.a.add(tc.b)); diff != "" {
				t.Fatalf("add() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.a.norm(), tc.c.sub(tc.b)); diff != "" {
				t.Fatalf("sub() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNatSubUnderflowPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	nat{1}.sub(nat{2})
}

func TestNatOperandsUntouched(t *testing.T) {
	x := nat{maxUint64, 3}
	y := nat{maxUint64, maxUint64, 7}
	xc, yc := x.clone(), y.clone()

	_ = x.add(y)
	_ = y.sub(x)
	_ = x.mul(y)
	_ = x.shl(70)
	_ = y.shr(3)
	_, _ = y.div(x)
	_, _ = y.divW(12345)
	_ = y.expWord(3)

	if diff := cmp.Diff(xc, x); diff != "" {
		t.Fatalf("x modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(yc, y); diff != "" {
		t.Fatalf("y modified (-want +got):\n%s", diff)
	}
}

func TestNatShifts(t *testing.T) {
	for idx, tc := range []struct {
		in    nat
		shift uint
		shl   nat
	}{
		{nat{1}, 0, nat{1}},
		{nat{1}, 1, nat{2}},
		{nat{1}, 64, nat{0, 1}},
		{nat{1}, 65, nat{0, 2}},
		{nat{1 << 63}, 1, nat{0, 1}},
		{nat{maxUint64}, 4, nat{maxUint64 &^ 0xF, 0xF}},
		{nat{3, 1 << 63}, 130, nat{0, 0, 12, 0, 2}},
	} {
		t.Run(fmt.Sprintf("%d/<<%d", idx, tc.shift), func(t *testing.T) {
			if diff := cmp.Diff(tc.shl, tc.in.shl(tc.shift)); diff != "" {
				t.Fatalf("shl() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.in, tc.shl.shr(tc.shift)); diff != "" {
				t.Fatalf("shr() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNatDivKnuth(t *testing.T) {
	// Cases where the trial quotient needs correcting, and where the top
	// limbs of the dividend equal the divisor's.
	for idx, tc := range []struct {
		u, v string
	}{
		{"0x1 0000000000000000 0000000000000000", "0x1 0000000000000001"},
		{"0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF", "0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"},
		{"0x8000000000000000 0000000000000000 0000000000000000", "0x8000000000000000 0000000000000001"},
		{"0x7FFFFFFFFFFFFFFF 8000000000000000 0000000000000000 0000000000000000", "0x8000000000000000 0000000000000001"},
		{"0x0000000000000003 0000000000000000 0000000000000000 0000000000000000", "0x2 0000000000000001 0000000000000001"},
		{"340282366920938463463374607431768211455", "18446744073709551617"},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u, v := ints(tc.u), ints(tc.v)
			bq, br := new(big.Int).QuoRem(bigs(tc.u), bigs(tc.v), new(big.Int))

			q, r := u.abs.div(v.abs)
			tt.MustEqual(bq.String(), Int{abs: q}.String())
			tt.MustEqual(br.String(), Int{abs: r}.String())
		})
	}
}

func TestMaxPow(t *testing.T) {
	for _, base := range []uint64{2, 3, 10, 16, 36, 62} {
		t.Run(fmt.Sprintf("%d", base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			p, n := maxPow(base)
			expected := uint64(1)
			for i := 0; i < n; i++ {
				expected *= base
			}
			tt.MustEqual(expected, p)
			hi, _ := mulAddWWW(p, base, 0)
			tt.MustAssert(hi != 0, "base**(n+1) must not fit in a limb")
		})
	}
}
